package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultValidationTTL is how long validation messages stay visible.
const DefaultValidationTTL = 5 * time.Second

// maxIDAttempts bounds regeneration when a fresh id collides.
const maxIDAttempts = 8

type noteStore struct {
	gateway   store.NoteGateway
	validator validators.Validator
	ids       utils.IDGenerator
	scheduler workers.Scheduler
	messages  app.Messages
	ttl       time.Duration

	logger *logger.Logger

	mu               sync.Mutex
	notes            models.Notes
	mode             models.Mode
	selection        string
	draft            models.Draft
	validationErrors []string

	// generation is bumped whenever the validation messages are set or
	// cleared; an expiry task only clears the generation it was armed for.
	generation uint64
	expiry     workers.Task

	listeners []func()
}

// NoteStoreDeps are the collaborators of [NewNoteStore]. Nil fields fall back
// to production defaults.
type NoteStoreDeps struct {
	Gateway   store.NoteGateway
	Validator validators.Validator
	IDs       utils.IDGenerator
	Scheduler workers.Scheduler
}

// NewNoteStore builds a [NoteStore] persisting through deps.Gateway.
func NewNoteStore(deps NoteStoreDeps, cfg NoteStoreConfig, logger *logger.Logger) NoteStore {
	if deps.Validator == nil {
		deps.Validator = validators.NewNoteValidator()
	}
	if deps.IDs == nil {
		deps.IDs = utils.NewUUIDGenerator()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = workers.NewTimerScheduler()
	}
	if cfg.ValidationTTL <= 0 {
		cfg.ValidationTTL = DefaultValidationTTL
	}

	return &noteStore{
		gateway:   deps.Gateway,
		validator: deps.Validator,
		ids:       deps.IDs,
		scheduler: deps.Scheduler,
		messages:  app.MessagesFor(cfg.Locale),
		ttl:       cfg.ValidationTTL,
		logger:    logger,
		notes:     models.Notes{},
		mode:      models.BrowsingMode(),
	}
}

// NoteStoreConfig holds the tunables of the note store.
type NoteStoreConfig struct {
	ValidationTTL time.Duration
	Locale        string
}

func (s *noteStore) Initialize(ctx context.Context) models.Snapshot {
	notes := s.gateway.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = notes.Clone()
	s.mode = models.BrowsingMode()
	s.selection = ""
	s.draft = models.Draft{}
	s.clearValidationLocked()

	s.logger.Info().
		Str("func", "noteStore.Initialize").
		Int("count", len(s.notes)).
		Msg("note store initialized")

	return s.snapshotLocked()
}

func (s *noteStore) BeginCreate() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = models.CreatingMode()
	s.draft = models.Draft{}

	return s.snapshotLocked()
}

func (s *noteStore) BeginEdit() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes.Find(s.selection)
	if s.selection == "" || !ok {
		s.logger.Debug().Str("func", "noteStore.BeginEdit").Msg("no selected note to edit")
		return s.snapshotLocked()
	}

	s.mode = models.EditingMode(note.ID)
	s.draft = models.Draft{Title: note.Title, Content: note.Content}

	return s.snapshotLocked()
}

func (s *noteStore) UpdateDraftTitle(text string) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode.IsComposing() {
		s.draft.Title = text
	}
	return s.snapshotLocked()
}

func (s *noteStore) UpdateDraftContent(text string) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode.IsComposing() {
		s.draft.Content = text
	}
	return s.snapshotLocked()
}

func (s *noteStore) Validate(draft models.Draft) models.ValidationResult {
	err := s.validator.Validate(context.Background(), draft)
	if err == nil {
		return models.ValidationResult{Passed: true}
	}

	var messages []string
	if errors.Is(err, validators.ErrEmptyTitle) {
		messages = append(messages, s.messages.MsgTitleRequired)
	}
	if errors.Is(err, validators.ErrEmptyContent) {
		messages = append(messages, s.messages.MsgContentRequired)
	}
	if len(messages) == 0 {
		// not a field failure; surface it as is
		messages = append(messages, err.Error())
	}

	return models.ValidationResult{Passed: false, Messages: messages}
}

func (s *noteStore) CommitCreate(ctx context.Context) (models.Snapshot, models.ValidationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode.Kind != models.Creating {
		s.logger.Debug().
			Str("func", "noteStore.CommitCreate").
			Stringer("mode", s.mode.Kind).
			Msg("not creating, ignoring commit")
		return s.snapshotLocked(), models.ValidationResult{}
	}

	result := s.Validate(s.draft)
	if !result.Passed {
		s.setValidationLocked(result.Messages)
		return s.snapshotLocked(), result
	}

	note := models.Note{
		ID:      s.newIDLocked(),
		Title:   s.draft.Title,
		Content: s.draft.Content,
	}

	next := append(s.notes.Clone(), note)
	s.persistLocked(ctx, next, "noteStore.CommitCreate")

	s.notes = next
	s.selection = note.ID
	s.mode = models.BrowsingMode()
	s.draft = models.Draft{}
	s.clearValidationLocked()

	return s.snapshotLocked(), result
}

func (s *noteStore) CommitEdit(ctx context.Context) (models.Snapshot, models.ValidationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode.Kind != models.Editing {
		s.logger.Debug().
			Str("func", "noteStore.CommitEdit").
			Stringer("mode", s.mode.Kind).
			Msg("not editing, ignoring commit")
		return s.snapshotLocked(), models.ValidationResult{}
	}

	id := s.mode.NoteID
	idx := s.notes.IndexOf(id)
	if idx < 0 {
		s.logger.Warn().
			Str("func", "noteStore.CommitEdit").
			Str("note_id", id).
			Msg("edited note no longer exists")
		s.mode = models.BrowsingMode()
		s.draft = models.Draft{}
		return s.snapshotLocked(), models.ValidationResult{}
	}

	result := s.Validate(s.draft)
	if !result.Passed {
		s.setValidationLocked(result.Messages)
		return s.snapshotLocked(), result
	}

	next := s.notes.Clone()
	next[idx] = models.Note{ID: id, Title: s.draft.Title, Content: s.draft.Content}
	s.persistLocked(ctx, next, "noteStore.CommitEdit")

	s.notes = next
	s.selection = id
	s.mode = models.BrowsingMode()
	s.draft = models.Draft{}
	s.clearValidationLocked()

	return s.snapshotLocked(), result
}

func (s *noteStore) DeleteSelected(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.selection
	if id == "" {
		s.logger.Debug().Str("func", "noteStore.DeleteSelected").Msg("nothing selected")
		return s.snapshotLocked()
	}

	idx := s.notes.IndexOf(id)
	if idx < 0 {
		s.logger.Debug().
			Str("func", "noteStore.DeleteSelected").
			Str("note_id", id).
			Msg("selected note not found")
		return s.snapshotLocked()
	}

	next := make(models.Notes, 0, len(s.notes)-1)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)
	s.persistLocked(ctx, next, "noteStore.DeleteSelected")

	s.notes = next
	s.selection = ""
	if s.mode.Kind == models.Editing && s.mode.NoteID == id {
		s.mode = models.BrowsingMode()
		s.draft = models.Draft{}
	}

	return s.snapshotLocked()
}

func (s *noteStore) SelectNote(id string) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notes.IndexOf(id) < 0 {
		s.logger.Debug().
			Str("func", "noteStore.SelectNote").
			Str("note_id", id).
			Msg("unknown note id")
		return s.snapshotLocked()
	}

	s.selection = id
	s.mode = models.BrowsingMode()
	s.draft = models.Draft{}

	return s.snapshotLocked()
}

func (s *noteStore) Cancel() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = models.BrowsingMode()
	s.draft = models.Draft{}

	return s.snapshotLocked()
}

func (s *noteStore) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *noteStore) OnChange(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

func (s *noteStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
}

// persistLocked writes next before it becomes visible. A failed write is
// logged and the in-memory change still applies.
func (s *noteStore) persistLocked(ctx context.Context, next models.Notes, fn string) {
	if err := s.gateway.Save(ctx, next); err != nil {
		s.logger.Warn().Err(err).
			Str("func", fn).
			Int("count", len(next)).
			Msg("notes were not persisted, keeping in-memory state")
	}
}

func (s *noteStore) newIDLocked() string {
	id := s.ids.Generate()
	for i := 1; i < maxIDAttempts && (id == "" || s.notes.IndexOf(id) >= 0); i++ {
		id = s.ids.Generate()
	}
	return id
}

func (s *noteStore) setValidationLocked(messages []string) {
	if s.expiry != nil {
		s.expiry.Stop()
	}

	s.generation++
	gen := s.generation
	s.validationErrors = append([]string(nil), messages...)
	s.expiry = s.scheduler.AfterFunc(s.ttl, func() {
		s.expireValidation(gen)
	})
}

func (s *noteStore) clearValidationLocked() {
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
	s.generation++
	s.validationErrors = nil
}

func (s *noteStore) expireValidation(gen uint64) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.validationErrors = nil
	s.expiry = nil
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	s.logger.Debug().Str("func", "noteStore.expireValidation").Msg("validation messages expired")

	for _, fn := range listeners {
		fn()
	}
}

func (s *noteStore) snapshotLocked() models.Snapshot {
	var errs []string
	if len(s.validationErrors) > 0 {
		errs = append([]string(nil), s.validationErrors...)
	}

	return models.Snapshot{
		Mode:             s.mode,
		Notes:            s.notes.Clone(),
		Selection:        s.selection,
		Draft:            s.draft,
		ValidationErrors: errs,
	}
}
