package store

import (
	"database/sql"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// DB wraps the sqlite connection used by the sqlite backend.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
