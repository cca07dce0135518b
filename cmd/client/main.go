package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-image-feed/internal/adapter"
	"github.com/MKhiriev/go-image-feed/internal/client"
	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
	"github.com/MKhiriev/go-image-feed/internal/store"
	"github.com/MKhiriev/go-image-feed/internal/tui"
	"github.com/MKhiriev/go-image-feed/internal/workers"
	"github.com/MKhiriev/go-image-feed/models"
)

const role = "image-feed-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	remote, err := adapter.NewHTTPRemoteSource(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote source")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(remote, storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(log, services.RefreshJob), storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
