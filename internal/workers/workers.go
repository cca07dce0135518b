package workers

import (
	"context"

	"github.com/MKhiriev/go-image-feed/internal/logger"
)

// Workers runs a fixed set of workers.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers; nil entries are skipped.
func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	ws := &Workers{logger: log.WithComponent("workers")}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	if w.logger != nil {
		w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
	}
}

// Stop stops the workers in reverse order and waits for each of them.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	if w.logger != nil {
		w.logger.Debug().Msg("workers stopped")
	}
}
