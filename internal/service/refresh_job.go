package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/models"
)

type refreshJob struct {
	feed     FeedSyncService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that calls feed.Refresh every interval while
// the feed is idle. It never fires from the error phase, so failures are only
// retried on request. A non-positive interval makes Start a no-op.
func NewRefreshJob(feed FeedSyncService, interval time.Duration, log *logger.Logger) ClientRefreshJob {
	return &refreshJob{
		feed:     feed,
		interval: interval,
		logger:   log.WithComponent("refresh-job"),
	}
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Msg("background refresh disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *refreshJob) tick(ctx context.Context) {
	state := j.feed.State()
	if state.Phase != models.PhaseIdle {
		j.logger.Debug().Str("phase", state.Phase.String()).Msg("skipping background refresh")
		return
	}
	j.feed.Refresh(ctx)
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
