package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		// ui has not taken the terminal yet
		logger.NewLogger("go-note-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-note-keeper", cfg.Log.Path)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, cfg.App, log)

	ui, err := tui.New(services, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
