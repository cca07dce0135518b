package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/workers"
)

var ErrNilUI = errors.New("client: ui is nil")

type App struct {
	ui       UI
	workers  workers.Worker
	storages io.Closer

	logger *logger.Logger
}

// NewApp assembles the client runtime. workers and storages may be nil.
func NewApp(ui UI, jobs workers.Worker, storages io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	return &App{
		ui:       ui,
		workers:  jobs,
		storages: storages,
		logger:   log.WithComponent("app"),
	}, nil
}

// Run blocks until the UI exits or the process receives SIGTERM, SIGINT or
// SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		if a.storages == nil {
			return
		}
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Msg("close storages")
			err = errors.Join(err, fmt.Errorf("close storages: %w", closeErr))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
