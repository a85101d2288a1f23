package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/marinedata/survtab/pkg/errcode"
)

// NotConnectedError creates an error for when load is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Load attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoSchemaError creates an error for when the database has no tables
// to load into.
func NoSchemaError(database string) error {
	msg := `Database has no tables

<em>Database:</em> %s

<em>How to fix:</em>
  1. Create the schema first: survtab create`

	vars := []any{database}

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("database %s has no tables", database),
	}
}

// TableReadError creates an error for when a harvested CSV file
// cannot be read or parsed.
func TableReadError(path string, err error) error {
	msg := `Cannot read harvested table

<em>File:</em> %s
<em>Error:</em> %v

<em>How to fix:</em>
  1. Check the directory holds the output of survtab harvest
  2. Re-run the harvest if files are missing or truncated`

	vars := []any{path, err}

	return &gn.Error{
		Code: errcode.LoadTableReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read table %s: %w", path, err),
	}
}

// MissingColumnError creates an error for when a harvested CSV file
// lacks an expected column.
func MissingColumnError(path, column string) error {
	msg := `Harvested table is missing a column

<em>File:</em> %s
<em>Column:</em> %s

The file does not look like survtab harvest output.`

	vars := []any{path, column}

	return &gn.Error{
		Code: errcode.LoadTableReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column %q not found in %s", column, path),
	}
}

// CopyError creates an error for when a bulk insert into a table
// fails.
func CopyError(table string, err error) error {
	msg := `Bulk insert failed

<em>Table:</em> %s
<em>Error:</em> %v

<em>How to fix:</em>
  1. Check the database connection and permissions
  2. Recreate the schema if tables are outdated: survtab create`

	vars := []any{table, err}

	return &gn.Error{
		Code: errcode.LoadCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bulk insert into %s failed: %w", table, err),
	}
}
