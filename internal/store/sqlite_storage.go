package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// sqliteStorage implements [KeyValueStorage] on the kv_storage table.
type sqliteStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteStorage wraps an opened and migrated [DB] as a [KeyValueStorage].
func NewSQLiteStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqliteStorage{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.Get").
			Str("key", key).
			Msg("failed to query value")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := buildSetValueQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
