package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/marinedata/survtab/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "survtab", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 50_000, cfg.Database.BatchSize)

	assert.Equal(t, "rv", cfg.Harvest.Kind)
	assert.Equal(t, ".", cfg.Harvest.OutDir)
	assert.Equal(t, "csv", cfg.Harvest.Format)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdateAppliesOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptHarvestKind("stat"),
		config.OptHarvestFormat("sqlite"),
		config.OptHarvestOutDir("/tmp/out"),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(4),
		config.OptHomeDir("/home/surveyor"),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "stat", cfg.Harvest.Kind)
	assert.Equal(t, "sqlite", cfg.Harvest.Format)
	assert.Equal(t, "/tmp/out", cfg.Harvest.OutDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.JobsNumber)
	assert.Equal(t, "/home/surveyor", cfg.HomeDir)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost(""),
		config.OptDatabasePort(-1),
		config.OptHarvestKind("spreadsheet"),
		config.OptHarvestFormat("parquet"),
		config.OptLogLevel("verbose"),
		config.OptJobsNumber(0),
	})

	// Invalid options are ignored, defaults survive.
	def := config.New()
	assert.Equal(t, def.Database.Host, cfg.Database.Host)
	assert.Equal(t, def.Database.Port, cfg.Database.Port)
	assert.Equal(t, def.Harvest.Kind, cfg.Harvest.Kind)
	assert.Equal(t, def.Harvest.Format, cfg.Harvest.Format)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.Equal(t, def.JobsNumber, cfg.JobsNumber)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabaseBatchSize(1000),
		config.OptHarvestFormat("sqlite"),
		config.OptLogFormat("text"),
	})

	restored := config.New()
	restored.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, restored.Database)
	assert.Equal(t, cfg.Harvest.OutDir, restored.Harvest.OutDir)
	assert.Equal(t, cfg.Harvest.Format, restored.Harvest.Format)
	assert.Equal(t, cfg.Log, restored.Log)
	assert.Equal(t, cfg.JobsNumber, restored.JobsNumber)
}

// Runtime-only fields stay out of the persistent option set.
func TestToOptionsSkipsRuntimeFields(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHarvestKind("stat"),
		config.OptHomeDir("/home/surveyor"),
	})

	restored := config.New()
	restored.Update(cfg.ToOptions())

	assert.Equal(t, "rv", restored.Harvest.Kind)
	assert.Empty(t, restored.HomeDir)
}

func TestPaths(t *testing.T) {
	home := "/home/surveyor"
	assert.Equal(t,
		filepath.Join(home, ".config", "survtab"),
		config.ConfigDir(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "survtab", "config.yaml"),
		config.ConfigFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "survtab", "translate.yaml"),
		config.TranslateFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "survtab", "logs"),
		config.LogDir(home))
}
