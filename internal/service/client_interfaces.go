package service

import (
	"context"

	"github.com/MKhiriev/go-image-feed/models"
)

// FeedSyncService is the client-side contract of the feed synchronization
// engine. Operations block until the triggered fetch is finished and report
// their outcome through the observable state only; triggers that would
// start a second concurrent fetch are dropped.
type FeedSyncService interface {
	// LoadInitial shows the cached snapshot, if any, and fetches page 1.
	// It is a no-op while any fetch is in flight.
	LoadInitial(ctx context.Context)

	// LoadMore fetches the page at the cursor and appends its new items.
	// It runs only when the feed is idle and not exhausted, or to retry a
	// failed LoadMore.
	LoadMore(ctx context.Context)

	// Refresh re-fetches page 1 and replaces the items on success. Stale items
	// stay visible meanwhile. It supersedes any fetch except another Refresh.
	Refresh(ctx context.Context)

	// Reset wipes the state and the cache, then behaves as LoadInitial.
	Reset(ctx context.Context)

	// Retry re-runs the operation that moved the feed into the error phase.
	Retry(ctx context.Context)

	// State returns a copy of the current state.
	State() models.SyncState

	// Subscribe returns a channel receiving the latest state after every
	// change, starting with the current one. A slow reader only misses
	// intermediate states. cancel closes the channel.
	Subscribe() (updates <-chan models.SyncState, cancel func())
}

// ClientRefreshJob periodically refreshes the feed in the background.
type ClientRefreshJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()
}

// IDGenerator produces unique session tags.
type IDGenerator interface {
	Generate() string
}
