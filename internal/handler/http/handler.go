package http

import (
	"time"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
	"github.com/MKhiriev/go-image-feed/internal/utils"
)

type Handler struct {
	services *service.Services

	apiKey         string
	requestTimeout time.Duration
	traceIDs       utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		apiKey:         cfg.APIKey,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
