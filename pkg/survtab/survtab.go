// Package survtab defines the interfaces implemented by the impure
// internal/io* packages.
package survtab

import (
	"context"
)

// Harvester converts fishery survey workbooks into normalized tables.
// One Harvester processes one workbook flavor (research-vessel or
// statistical); construction decides which.
type Harvester interface {
	// Harvest reads the given workbooks, expands their length-frequency
	// records, and writes the normalized tables to the configured sink.
	// A workbook that fails is reported and skipped; Harvest returns an
	// error only when every workbook fails.
	Harvest(ctx context.Context, paths []string) error
}

// SchemaManager manages the PostgreSQL schema for normalized tables.
// It uses GORM AutoMigrate, so schema management is idempotent - safe
// to run multiple times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM AutoMigrate.
	Create(ctx context.Context) error
}

// Loader bulk-loads previously harvested CSV tables into PostgreSQL.
type Loader interface {
	// Load reads the CSV tables in dir and inserts them with pgx
	// CopyFrom in batches.
	Load(ctx context.Context, dir string) error
}
