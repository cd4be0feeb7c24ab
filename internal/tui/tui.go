package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	store     service.NoteStore
	messages  app.Messages
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteStore == nil {
		return nil, ErrNoNoteStore
	}

	return &TUI{
		store:     services.NoteStore,
		messages:  app.MessagesFor(cfg.Locale),
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the notes screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.store, t.messages, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.store.OnChange(func() {
		program.Send(storeChangedMsg{})
	})

	t.logger.Debug().Str("func", "TUI.Run").Msg("starting terminal ui")
	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal ui stopped with error")
		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}
