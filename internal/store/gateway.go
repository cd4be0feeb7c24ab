package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultNotesKey is the storage key the notes payload lives under.
const DefaultNotesKey = "notes"

var emptyPayload = []byte("[]")

type noteGateway struct {
	storage KeyValueStorage
	key     string
	logger  *logger.Logger
}

// NewNoteGateway returns a [NoteGateway] keeping the collection under key in
// storage.
func NewNoteGateway(storage KeyValueStorage, key string, logger *logger.Logger) NoteGateway {
	if key == "" {
		key = DefaultNotesKey
	}
	return &noteGateway{
		storage: storage,
		key:     key,
		logger:  logger,
	}
}

func (g *noteGateway) Load(ctx context.Context) models.Notes {
	payload, found, err := g.storage.Get(ctx, g.key)
	if err != nil {
		g.logger.Err(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).
			Str("func", "noteGateway.Load").
			Str("key", g.key).
			Msg("could not read notes, starting empty")
		return models.Notes{}
	}

	if !found {
		g.logger.Debug().
			Str("func", "noteGateway.Load").
			Str("key", g.key).
			Msg("no notes stored yet, initializing empty collection")
		if err = g.storage.Set(ctx, g.key, emptyPayload); err != nil {
			g.logger.Err(fmt.Errorf("%w: %w", ErrPersistenceWrite, err)).
				Str("func", "noteGateway.Load").
				Str("key", g.key).
				Msg("could not initialize notes storage")
		}
		return models.Notes{}
	}

	notes, err := decodeNotes(payload)
	if err != nil {
		g.logger.Err(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).
			Str("func", "noteGateway.Load").
			Str("key", g.key).
			Msg("stored notes are unreadable, starting empty")
		return models.Notes{}
	}

	g.logger.Debug().
		Str("func", "noteGateway.Load").
		Int("count", len(notes)).
		Msg("notes loaded")
	return notes
}

func (g *noteGateway) Save(ctx context.Context, notes models.Notes) error {
	payload, err := json.Marshal(notes.Clone())
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
		g.logger.Err(err).Str("func", "noteGateway.Save").Msg("could not encode notes")
		return err
	}

	if err = g.storage.Set(ctx, g.key, payload); err != nil {
		err = fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
		g.logger.Err(err).
			Str("func", "noteGateway.Save").
			Str("key", g.key).
			Int("count", len(notes)).
			Msg("could not store notes")
		return err
	}

	return nil
}

// decodeNotes parses a stored payload. A JSON null or blank payload is an
// empty collection; anything that is not an array of notes with unique
// non-empty ids is rejected.
func decodeNotes(payload []byte) (models.Notes, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.Notes{}, nil
	}

	var notes models.Notes
	if err := json.Unmarshal(trimmed, &notes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	seen := make(map[string]struct{}, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: note at index %d has no id", ErrCorruptPayload, i)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrCorruptPayload, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	return notes.Clone(), nil
}
