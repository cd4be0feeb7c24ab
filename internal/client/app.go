package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Runner is the part of the terminal ui the app drives.
type Runner interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       Runner
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui Runner, logger *logger.Logger) (*App, error) {
	if services == nil || services.NoteStore == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		storages: storages,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run loads the notes, shows the ui and releases everything on exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()
	ctx = a.logger.WithContext(ctx)

	snap := a.services.NoteStore.Initialize(ctx)
	a.logger.Info().
		Str("func", "App.Run").
		Int("notes", len(snap.Notes)).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

func (a *App) close() {
	a.services.Close()

	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing storage")
	}
}
