package ioharvest

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/marinedata/survtab/pkg/lfreq"
	_ "modernc.org/sqlite"
)

// sqliteWriter writes the harvested tables into a single SQLite file,
// replacing any previous harvest output at the same path.
type sqliteWriter struct {
	path string
}

func newSQLiteWriter(path string) tableWriter {
	return &sqliteWriter{path: path}
}

var sqliteDDL = []string{
	`CREATE TABLE species (
  species_id TEXT PRIMARY KEY,
  scientific_name TEXT NOT NULL,
  canonical TEXT,
  common_name TEXT,
  species_group TEXT
)`,
	`CREATE TABLE survey_samples (
  sample_id TEXT PRIMARY KEY,
  species_id TEXT,
  area_id TEXT,
  vessel_id TEXT,
  sample_date TEXT,
  catch_weight REAL,
  sample_weight REAL
)`,
	`CREATE TABLE length_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sample_id TEXT NOT NULL,
  species_id TEXT,
  raw_length REAL,
  raw_frequency REAL,
  raised_length REAL,
  raised_frequency REAL
)`,
	`CREATE TABLE vessels (
  vessel_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  registration TEXT,
  gear_type TEXT
)`,
	`CREATE TABLE areas (
  area_id TEXT PRIMARY KEY,
  name TEXT,
  zone TEXT
)`,
	`CREATE TABLE efforts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  area_id TEXT,
  vessel_id TEXT,
  effort_date TEXT,
  gear TEXT,
  duration REAL,
  depth REAL,
  total_catch REAL
)`,
	`CREATE TABLE harvest_notices (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sample_id TEXT,
  reason TEXT
)`,
	`CREATE INDEX idx_length_records_sample ON length_records (sample_id)`,
	`CREATE INDEX idx_survey_samples_species ON survey_samples (species_id)`,
}

func (w *sqliteWriter) Write(
	ds *dataset,
	lengths []lfreq.Row,
	notices []lfreq.Notice,
) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return WriteError(w.path, err)
	}
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return WriteError(w.path, err)
	}

	db, err := sql.Open("sqlite", w.path)
	if err != nil {
		return WriteError(w.path, err)
	}
	defer db.Close()

	for _, ddl := range sqliteDDL {
		if _, err := db.Exec(ddl); err != nil {
			return WriteError(w.path, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return WriteError(w.path, err)
	}
	defer tx.Rollback()

	if err := w.insertAll(tx, ds, lengths, notices); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return WriteError(w.path, err)
	}
	return nil
}

func (w *sqliteWriter) insertAll(
	tx *sql.Tx,
	ds *dataset,
	lengths []lfreq.Row,
	notices []lfreq.Notice,
) error {
	for _, sp := range ds.species {
		_, err := tx.Exec(
			`INSERT INTO species VALUES (?, ?, ?, ?, ?)`,
			sp.ID, sp.ScientificName, sp.Canonical,
			sp.CommonName, sp.SpeciesGroup,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, s := range ds.samples {
		_, err := tx.Exec(
			`INSERT INTO survey_samples VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.SpeciesID, s.AreaID, s.VesselID,
			nullDate(s.SampleDate), s.CatchWeight, s.SampleWeight,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, r := range lengths {
		_, err := tx.Exec(
			`INSERT INTO length_records
  (sample_id, species_id, raw_length, raw_frequency,
   raised_length, raised_frequency)
  VALUES (?, ?, ?, ?, ?, ?)`,
			r.SampleID, r.SpeciesID,
			r.RawLength, r.RawFreq, r.RaisedLength, r.RaisedFreq,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, v := range ds.vessels {
		_, err := tx.Exec(
			`INSERT INTO vessels VALUES (?, ?, ?, ?)`,
			v.ID, v.Name, v.Registration, v.GearType,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, a := range ds.areas {
		_, err := tx.Exec(
			`INSERT INTO areas VALUES (?, ?, ?)`,
			a.ID, a.Name, a.Zone,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, e := range ds.efforts {
		_, err := tx.Exec(
			`INSERT INTO efforts
  (area_id, vessel_id, effort_date, gear, duration, depth, total_catch)
  VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.AreaID, e.VesselID, nullDate(e.EffortDate),
			e.Gear, e.Duration, e.Depth, e.TotalCatch,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}

	for _, n := range notices {
		_, err := tx.Exec(
			`INSERT INTO harvest_notices (sample_id, reason) VALUES (?, ?)`,
			n.SampleID, n.Reason,
		)
		if err != nil {
			return WriteError(w.path, err)
		}
	}
	return nil
}

// nullDate keeps dates as ISO strings so the file stays readable with
// plain SQLite tooling.
func nullDate(v sql.NullTime) any {
	if !v.Valid {
		return nil
	}
	return v.Time.Format("2006-01-02")
}
