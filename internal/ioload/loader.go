// Package ioload bulk-loads previously harvested CSV tables into
// PostgreSQL. This is an impure I/O package.
package ioload

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinedata/survtab/pkg/config"
	"github.com/marinedata/survtab/pkg/db"
	"github.com/marinedata/survtab/pkg/survtab"
)

type colKind int

const (
	colText colKind = iota
	colReal
	colDate
)

type column struct {
	// csvName is the header in the harvested file, dbName the column
	// of the target table. They differ where GORM shortens the name.
	csvName string
	dbName  string
	kind    colKind
}

// tableSpec describes one harvested file and its target table. Tables
// with a serial primary key list only the payload columns; CopyFrom
// leaves the key to the database.
type tableSpec struct {
	file    string
	table   string
	columns []column
}

var tableSpecs = []tableSpec{
	{
		file:  "species.csv",
		table: "species",
		columns: []column{
			{"species_id", "id", colText},
			{"scientific_name", "scientific_name", colText},
			{"canonical", "canonical", colText},
			{"common_name", "common_name", colText},
			{"species_group", "species_group", colText},
		},
	},
	{
		file:  "vessels.csv",
		table: "vessels",
		columns: []column{
			{"vessel_id", "id", colText},
			{"name", "name", colText},
			{"registration", "registration", colText},
			{"gear_type", "gear_type", colText},
		},
	},
	{
		file:  "areas.csv",
		table: "areas",
		columns: []column{
			{"area_id", "id", colText},
			{"name", "name", colText},
			{"zone", "zone", colText},
		},
	},
	{
		file:  "survey_samples.csv",
		table: "survey_samples",
		columns: []column{
			{"sample_id", "id", colText},
			{"species_id", "species_id", colText},
			{"area_id", "area_id", colText},
			{"vessel_id", "vessel_id", colText},
			{"sample_date", "sample_date", colDate},
			{"catch_weight", "catch_weight", colReal},
			{"sample_weight", "sample_weight", colReal},
		},
	},
	{
		file:  "efforts.csv",
		table: "efforts",
		columns: []column{
			{"area_id", "area_id", colText},
			{"vessel_id", "vessel_id", colText},
			{"effort_date", "effort_date", colDate},
			{"gear", "gear", colText},
			{"duration", "duration", colReal},
			{"depth", "depth", colReal},
			{"total_catch", "total_catch", colReal},
		},
	},
	{
		file:  "length_records.csv",
		table: "length_records",
		columns: []column{
			{"sample_id", "sample_id", colText},
			{"species_id", "species_id", colText},
			{"raw_length", "raw_length", colReal},
			{"raw_frequency", "raw_freq", colReal},
			{"raised_length", "raised_length", colReal},
			{"raised_frequency", "raised_freq", colReal},
		},
	},
	{
		file:  "harvest_notices.csv",
		table: "harvest_notices",
		columns: []column{
			{"sample_id", "sample_id", colText},
			{"reason", "reason", colText},
		},
	},
}

// loader implements the survtab.Loader interface.
type loader struct {
	cfg *config.Config
	op  db.Operator
}

// New creates a new Loader on top of a connected database operator.
func New(cfg *config.Config, op db.Operator) survtab.Loader {
	return &loader{cfg: cfg, op: op}
}

// Load reads the harvested CSV tables in dir and bulk-inserts them
// with pgx CopyFrom, replacing any rows from previous loads. Every
// load run is recorded in import_batches under a fresh UUID.
func (l *loader) Load(ctx context.Context, dir string) error {
	if l.op.Pool() == nil {
		return NotConnectedError()
	}

	hasTables, err := l.op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return NoSchemaError(l.cfg.Database.Database)
	}

	startTime := time.Now()
	batchID := uuid.New().String()
	slog.Info("Starting load",
		"dir", dir,
		"batch_id", batchID,
	)

	var totalRows int
	for _, spec := range tableSpecs {
		n, err := l.loadTable(ctx, dir, spec)
		if err != nil {
			return err
		}
		totalRows += n
	}

	err = l.recordBatch(ctx, batchID, dir, totalRows)
	if err != nil {
		return err
	}

	totalDuration := time.Since(startTime)
	slog.Info("Load complete",
		"batch_id", batchID,
		"rows", totalRows,
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Load complete
Loaded <em>%s</em> rows from %d tables.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(totalRows)),
		len(tableSpecs),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	return nil
}

// loadTable replaces the contents of one table with the rows of one
// harvested file.
func (l *loader) loadTable(
	ctx context.Context,
	dir string,
	spec tableSpec,
) (int, error) {
	path := filepath.Join(dir, spec.file)
	rows, err := readTable(path, spec)
	if err != nil {
		return 0, err
	}

	_, err = l.op.Pool().Exec(ctx, "DELETE FROM "+spec.table)
	if err != nil {
		return 0, CopyError(spec.table, err)
	}

	if len(rows) == 0 {
		slog.Info("Table is empty", "table", spec.table)
		return 0, nil
	}

	dbCols := make([]string, len(spec.columns))
	for i, col := range spec.columns {
		dbCols[i] = col.dbName
	}

	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", spec.table+": ")
	bar.Set(pb.CleanOnFinish, true)

	batchSize := l.cfg.Database.BatchSize
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		batch := rows[i:end]

		_, err = l.op.Pool().CopyFrom(
			ctx,
			pgx.Identifier{spec.table},
			dbCols,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			bar.Finish()
			return 0, CopyError(spec.table, err)
		}
		bar.Add(len(batch))
	}
	bar.Finish()

	slog.Info("Table loaded", "table", spec.table, "rows", len(rows))
	return len(rows), nil
}

func (l *loader) recordBatch(
	ctx context.Context,
	batchID, dir string,
	totalRows int,
) error {
	_, err := l.op.Pool().Exec(ctx,
		`INSERT INTO import_batches (id, source_dir, records_num, created_at)
		 VALUES ($1, $2, $3, $4)`,
		batchID, dir, totalRows, time.Now(),
	)
	if err != nil {
		return CopyError("import_batches", err)
	}
	return nil
}

// readTable parses one harvested CSV file into CopyFrom rows. Columns
// are resolved by header name, so the file's column order does not
// matter.
func readTable(path string, spec tableSpec) ([][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, TableReadError(path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, TableReadError(path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int)
	for i, name := range records[0] {
		idx[name] = i
	}
	for _, col := range spec.columns {
		if _, ok := idx[col.csvName]; !ok {
			return nil, MissingColumnError(path, col.csvName)
		}
	}

	rows := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]any, len(spec.columns))
		for i, col := range spec.columns {
			v, err := convertCell(rec[idx[col.csvName]], col.kind)
			if err != nil {
				return nil, TableReadError(path, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func convertCell(s string, kind colKind) (any, error) {
	switch kind {
	case colReal:
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case colDate:
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return s, nil
	}
}
