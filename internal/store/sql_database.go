package store

import (
	"database/sql"

	"github.com/avoronin/scanledger/internal/logger"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies all pending schema migrations for the dialect this
// connection was opened with.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}
