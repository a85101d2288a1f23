package ioharvest

import (
	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/marinedata/survtab/pkg/schema"
)

// harvestStat extracts records from a statistical workbook. Stat
// workbooks describe landings by reporting area rather than survey
// stations: samples carry pre-existing link ids and there is no vessel
// table to build.
func (h *harvester) harvestStat(wb *workbook, ds *dataset) error {
	if !wb.catch.hasColumn("scientific_name") {
		return ColumnMissingError(wb.path, "catch", "scientific_name")
	}

	for _, row := range wb.effort.rows {
		area := wb.effort.cell(row, "area")
		ds.addArea(schema.Area{
			ID:   area,
			Name: wb.effort.cell(row, "area_name"),
			Zone: wb.effort.cell(row, "zone"),
		})

		if area == "" {
			continue
		}
		ds.addEffort(schema.Effort{
			AreaID:     area,
			EffortDate: parseDateCell(wb.effort.cell(row, "date")),
			Gear:       wb.effort.cell(row, "gear"),
			Duration:   parseFloatCell(wb.effort.cell(row, "days")),
			TotalCatch: parseFloatCell(wb.effort.cell(row, "total_catch")),
		})
	}

	for _, row := range wb.catch.rows {
		scientificName := wb.catch.cell(row, "scientific_name")
		if scientificName == "" {
			continue
		}

		sp := h.speciesFor(
			scientificName,
			wb.catch.cell(row, "common_name"),
			wb.catch.cell(row, "species_group"),
		)
		ds.addSpecies(sp)

		area := wb.catch.cell(row, "area")
		ds.addArea(schema.Area{ID: area})

		// Stat workbooks number their own samples; generate an id only
		// when the link column is blank.
		id := wb.catch.cell(row, "sample_id")
		if id == "" {
			id = h.nextSampleID()
		}

		ds.addSample(
			schema.SurveySample{
				ID:           id,
				SpeciesID:    sp.ID,
				AreaID:       area,
				SampleDate:   parseDateCell(wb.catch.cell(row, "date")),
				CatchWeight:  parseFloatCell(wb.catch.cell(row, "catch_weight")),
				SampleWeight: parseFloatCell(wb.catch.cell(row, "sample_weight")),
			},
			lfreq.Sample{
				ID:         id,
				SpeciesID:  sp.ID,
				RawCode:    wb.catch.cell(row, "raw_freq"),
				RaisedCode: wb.catch.cell(row, "raised_freq"),
			},
		)
	}

	return nil
}
