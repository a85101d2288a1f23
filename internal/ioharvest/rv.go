package ioharvest

import (
	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/marinedata/survtab/pkg/schema"
)

// harvestRV extracts records from a research-vessel survey workbook.
// The effort sheet is processed first: it carries the richer vessel
// and area attributes, and reference tables keep the first record per
// id.
func (h *harvester) harvestRV(wb *workbook, ds *dataset) error {
	if !wb.catch.hasColumn("scientific_name") {
		return ColumnMissingError(wb.path, "catch", "scientific_name")
	}

	for _, row := range wb.effort.rows {
		station := wb.effort.cell(row, "station")
		vesselName := wb.effort.cell(row, "vessel_name")
		registration := wb.effort.cell(row, "vessel_registration")

		vesselID := registration
		if vesselID == "" {
			vesselID = vesselName
		}
		if vesselID != "" {
			ds.addVessel(schema.Vessel{
				ID:           vesselID,
				Name:         vesselName,
				Registration: registration,
				GearType:     wb.effort.cell(row, "gear"),
			})
		}
		ds.addArea(schema.Area{
			ID:   station,
			Name: wb.effort.cell(row, "area_name"),
			Zone: wb.effort.cell(row, "zone"),
		})

		if station == "" && vesselID == "" {
			continue
		}
		ds.addEffort(schema.Effort{
			AreaID:     station,
			VesselID:   vesselID,
			EffortDate: parseDateCell(wb.effort.cell(row, "date")),
			Gear:       wb.effort.cell(row, "gear"),
			Duration:   parseFloatCell(wb.effort.cell(row, "duration")),
			Depth:      parseFloatCell(wb.effort.cell(row, "depth")),
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

		station := wb.catch.cell(row, "station")
		ds.addArea(schema.Area{ID: station})

		id := h.nextSampleID()
		ds.addSample(
			schema.SurveySample{
				ID:           id,
				SpeciesID:    sp.ID,
				AreaID:       station,
				VesselID:     wb.catch.cell(row, "vessel"),
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
