// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientStorages groups the persistence components used by the note store.
type ClientStorages struct {
	// Storage is the selected key-value backend.
	Storage KeyValueStorage
	// Gateway loads and saves the note collection through Storage.
	Gateway NoteGateway
}

// NewClientStorages opens the backend named in cfg and builds the note
// gateway on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	var (
		storage KeyValueStorage
		err     error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		storage = NewMemoryStorage()
	case config.BackendFile:
		storage = NewFileStorage(cfg.Path, log)
	case config.BackendSQLite:
		storage, err = newSQLiteBackend(ctx, cfg.Path, log)
		if err != nil {
			return nil, err
		}
	default:
		log.Error().
			Str("func", "NewClientStorages").
			Str("backend", cfg.Backend).
			Msg("unsupported storage backend")
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	log.Info().
		Str("func", "NewClientStorages").
		Str("backend", cfg.Backend).
		Str("path", cfg.Path).
		Msg("storage backend ready")

	return &ClientStorages{
		Storage: storage,
		Gateway: NewNoteGateway(storage, cfg.Key, log),
	}, nil
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	return s.Storage.Close()
}

func newSQLiteBackend(ctx context.Context, path string, log *logger.Logger) (KeyValueStorage, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("open sqlite storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLiteBackend").Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("migrate sqlite storage: %w", err)
	}

	return NewSQLiteStorage(db, log), nil
}
