package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
)

// CatalogueServiceName is the health-check name of the photo catalogue.
const CatalogueServiceName = "imagefeed.Catalogue"

// Handler is the root gRPC transport handler.
//
// The feed itself is only served over REST; the gRPC listener exposes the
// standard health and reflection services so that orchestrators can probe
// the dev server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to srv and publishes
// the initial serving status. An empty catalogue is reported as NOT_SERVING.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	reflection.Register(srv)

	status := healthpb.HealthCheckResponse_SERVING
	if h.services == nil || h.services.Catalogue == nil || h.services.Catalogue.Total() == 0 {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(CatalogueServiceName, status)

	h.logger.Info().Str("status", status.String()).Msg("gRPC health service registered")
}

// Shutdown flips every service to NOT_SERVING so that probes stop routing
// traffic while the server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
