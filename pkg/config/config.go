// Package config provides configuration management for survtab.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains valid
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use SURVTAB_ prefix with underscores for nesting:
//
//	SURVTAB_DATABASE_HOST=localhost
//	SURVTAB_DATABASE_PORT=5432
//	SURVTAB_LOG_LEVEL=info
//	SURVTAB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete survtab configuration.
type Config struct {
	// Database contains PostgreSQL connection settings used by the
	// create and load commands.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Harvest contains settings specific to the harvest command.
	Harvest HarvestConfig `mapstructure:"harvest" yaml:"harvest"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for sample
	// expansion. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It is set by the CLI during init, there is no default value.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows per bulk insert during load.
	// Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// HarvestConfig contains settings specific to the harvest command.
type HarvestConfig struct {
	// Kind selects the workbook flavor: "rv" for research-vessel survey
	// workbooks or "stat" for statistical workbooks.
	// Runtime-only field - set by CLI flag, not in ToOptions().
	Kind string `mapstructure:"kind" yaml:"kind"`

	// OutDir is the directory where normalized tables are written.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Format selects the output sink: "csv" writes one delimited file
	// per table, "sqlite" writes all tables into one SQLite file.
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "survtab",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Harvest: HarvestConfig{
			Kind:   "rv",
			OutDir: ".",
			Format: "csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now the file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
