package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-image-feed/internal/config"
	myGRPC "github.com/MKhiriev/go-image-feed/internal/handler/grpc"
	"github.com/MKhiriev/go-image-feed/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	g := &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		logger:  logger.WithComponent("grpc-server"),
	}
	g.server = grpc.NewServer(grpc.ChainUnaryInterceptor(g.logUnary))
	handler.Register(g.server)

	return g
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.listener = lis
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

func (g *grpcServer) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	g.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
