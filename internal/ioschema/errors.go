package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/marinedata/survtab/pkg/errcode"
)

// NotConnectedError creates an error for when schema creation is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for when GORM cannot wrap the
// existing pgx connection pool.
func GORMConnectionError(err error) error {
	msg := "Could not initialize the schema migrator"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to open GORM connection: %w", err),
	}
}

// CreateSchemaError creates an error for a failed AutoMigrate run.
func CreateSchemaError(err error) error {
	msg := `Could not create the survey tables

<em>How to fix:</em>
  1. Verify the database user can create tables
  2. Drop conflicting tables or use a fresh database`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}
