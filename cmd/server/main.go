package main

import (
	"fmt"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/handler"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/server"
	"github.com/MKhiriev/go-image-feed/internal/service"
	"github.com/MKhiriev/go-image-feed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("image-feed-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("fixture", cfg.Server.FixturePath).
		Int("total_items", cfg.Server.TotalItems).
		Bool("api_key_required", cfg.Server.APIKey != "").
		Msg("received configs")

	services, err := service.NewServices(cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
