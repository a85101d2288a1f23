package ioharvest

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marinedata/survtab/pkg/lfreq"
)

// tableWriter serializes one harvested dataset to an output sink.
type tableWriter interface {
	Write(ds *dataset, lengths []lfreq.Row, notices []lfreq.Notice) error
}

// csvWriter writes one delimited file per normalized table.
type csvWriter struct {
	dir string
}

func newCSVWriter(dir string) tableWriter {
	return &csvWriter{dir: dir}
}

func (w *csvWriter) Write(
	ds *dataset,
	lengths []lfreq.Row,
	notices []lfreq.Notice,
) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return WriteError(w.dir, err)
	}

	tables := []struct {
		file   string
		header []string
		rows   func() [][]string
	}{
		{
			file:   "species.csv",
			header: []string{"species_id", "scientific_name", "canonical", "common_name", "species_group"},
			rows: func() [][]string {
				res := make([][]string, len(ds.species))
				for i, sp := range ds.species {
					res[i] = []string{
						sp.ID, sp.ScientificName, sp.Canonical,
						sp.CommonName, sp.SpeciesGroup,
					}
				}
				return res
			},
		},
		{
			file:   "survey_samples.csv",
			header: []string{"sample_id", "species_id", "area_id", "vessel_id", "sample_date", "catch_weight", "sample_weight"},
			rows: func() [][]string {
				res := make([][]string, len(ds.samples))
				for i, s := range ds.samples {
					res[i] = []string{
						s.ID, s.SpeciesID, s.AreaID, s.VesselID,
						formatDate(s.SampleDate),
						formatFloat(s.CatchWeight),
						formatFloat(s.SampleWeight),
					}
				}
				return res
			},
		},
		{
			file:   "length_records.csv",
			header: []string{"sample_id", "species_id", "raw_length", "raw_frequency", "raised_length", "raised_frequency"},
			rows: func() [][]string {
				res := make([][]string, len(lengths))
				for i, r := range lengths {
					res[i] = []string{
						r.SampleID, r.SpeciesID,
						formatFloat(r.RawLength),
						formatFloat(r.RawFreq),
						formatFloat(r.RaisedLength),
						formatFloat(r.RaisedFreq),
					}
				}
				return res
			},
		},
		{
			file:   "vessels.csv",
			header: []string{"vessel_id", "name", "registration", "gear_type"},
			rows: func() [][]string {
				res := make([][]string, len(ds.vessels))
				for i, v := range ds.vessels {
					res[i] = []string{v.ID, v.Name, v.Registration, v.GearType}
				}
				return res
			},
		},
		{
			file:   "areas.csv",
			header: []string{"area_id", "name", "zone"},
			rows: func() [][]string {
				res := make([][]string, len(ds.areas))
				for i, a := range ds.areas {
					res[i] = []string{a.ID, a.Name, a.Zone}
				}
				return res
			},
		},
		{
			file:   "efforts.csv",
			header: []string{"area_id", "vessel_id", "effort_date", "gear", "duration", "depth", "total_catch"},
			rows: func() [][]string {
				res := make([][]string, len(ds.efforts))
				for i, e := range ds.efforts {
					res[i] = []string{
						e.AreaID, e.VesselID,
						formatDate(e.EffortDate),
						e.Gear,
						formatFloat(e.Duration),
						formatFloat(e.Depth),
						formatFloat(e.TotalCatch),
					}
				}
				return res
			},
		},
		{
			file:   "harvest_notices.csv",
			header: []string{"sample_id", "reason"},
			rows: func() [][]string {
				res := make([][]string, len(notices))
				for i, n := range notices {
					res[i] = []string{n.SampleID, n.Reason}
				}
				return res
			},
		},
	}

	for _, table := range tables {
		path := filepath.Join(w.dir, table.file)
		if err := writeCSVFile(path, table.header, table.rows()); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return WriteError(path, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return WriteError(path, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func formatDate(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format("2006-01-02")
}
