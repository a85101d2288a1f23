// Package ioschema implements the SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/marinedata/survtab/pkg/db"
	"github.com/marinedata/survtab/pkg/schema"
	"github.com/marinedata/survtab/pkg/survtab"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the survtab.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) survtab.SchemaManager {
	return &manager{operator: op}
}

// Create creates the normalized survey tables using GORM AutoMigrate.
// AutoMigrate is idempotent, so an existing schema is brought up to
// date rather than recreated.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}
