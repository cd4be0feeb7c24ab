package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the durable key-value surface the notes payload lives
// in. Values are opaque byte strings; keys are plain names.
type KeyValueStorage interface {
	// Get returns the value stored under key. found is false when the key has
	// never been written. A non-nil error means the backend could not be read.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases backend resources.
	Close() error
}

// NoteGateway loads and saves the whole note collection under a fixed key.
type NoteGateway interface {
	// Load returns the persisted collection. It never fails: a missing
	// payload initializes storage with an empty collection and an unreadable
	// payload is logged and yields an empty collection.
	Load(ctx context.Context) models.Notes

	// Save serializes notes and overwrites the stored payload. Failures are
	// logged and returned wrapped in [ErrPersistenceWrite].
	Save(ctx context.Context, notes models.Notes) error
}
