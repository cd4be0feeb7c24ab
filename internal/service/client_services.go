package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	NoteStore NoteStore
}

func NewClientServices(storages *store.ClientStorages, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	noteStore := NewNoteStore(
		NoteStoreDeps{Gateway: storages.Gateway},
		NoteStoreConfig{ValidationTTL: cfg.ValidationTTL, Locale: cfg.Locale},
		logger.GetChildLogger(),
	)

	return &ClientServices{
		NoteStore: noteStore,
	}
}

// Close stops background work of every service.
func (s *ClientServices) Close() {
	s.NoteStore.Close()
}
