// Package handler builds the transport handlers of the dev feed server.
package handler

import (
	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/handler/grpc"
	"github.com/MKhiriev/go-image-feed/internal/handler/http"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
)

// Handlers holds one handler per enabled transport. A transport whose
// address is empty in the config has a nil handler.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, ErrNoTransport
	}

	var handlers Handlers
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return &handlers, nil
}
