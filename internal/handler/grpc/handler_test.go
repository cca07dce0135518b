package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
)

func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		status healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "catalogue with photos", total: 3, status: healthpb.HealthCheckResponse_SERVING},
		{name: "empty catalogue", total: 0, status: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{Catalogue: service.NewGeneratedCatalogue(tt.total)}, logger.Nop())
			client := startServer(t, h)

			for _, name := range []string{"", CatalogueServiceName} {
				resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
				require.NoError(t, err)
				assert.Equal(t, tt.status, resp.GetStatus())
			}
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{Catalogue: service.NewGeneratedCatalogue(1)}, logger.Nop())
	client := startServer(t, h)

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: CatalogueServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_NilServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
