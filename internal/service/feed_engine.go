// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-image-feed/internal/adapter"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/store"
	"github.com/MKhiriev/go-image-feed/internal/utils"
	"github.com/MKhiriev/go-image-feed/models"
)

// FeedEngine is the feed synchronization state machine. It drives a
// [adapter.RemoteSource], a [store.CacheStore] and [Merge] to keep one
// consistent [models.SyncState].
//
// At most one fetch is in flight at a time. Every fetch is tagged with the
// session it was started in; Refresh, Reset and LoadInitial open a new
// session, and responses of an older session are dropped on arrival.
type FeedEngine struct {
	remote adapter.RemoteSource
	cache  store.CacheStore
	ids    IDGenerator
	logger *logger.Logger

	mu          sync.RWMutex
	state       models.SyncState
	session     string
	inflight    models.Operation
	subscribers map[int]chan models.SyncState
	nextSubID   int

	// cacheMu orders cache I/O; the session is re-checked under it so a
	// superseded session never overwrites what a newer one wrote or cleared.
	// Lock order: cacheMu before mu.
	cacheMu sync.Mutex
}

var _ FeedSyncService = (*FeedEngine)(nil)

// NewFeedEngine constructs a [FeedEngine] in the initial state: phase
// LoadingInitial, cursor 1, hasMore true and no items. Nothing is fetched
// until LoadInitial is called.
func NewFeedEngine(remote adapter.RemoteSource, cache store.CacheStore, log *logger.Logger) (*FeedEngine, error) {
	if remote == nil {
		return nil, ErrNilRemoteSource
	}
	if cache == nil {
		return nil, ErrNilCacheStore
	}

	return &FeedEngine{
		remote:      remote,
		cache:       cache,
		ids:         utils.NewUUIDGenerator(),
		logger:      log.WithComponent("feed-engine"),
		state:       models.NewSyncState(),
		subscribers: make(map[int]chan models.SyncState),
	}, nil
}

// State implements [FeedSyncService].
func (e *FeedEngine) State() models.SyncState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

// Subscribe implements [FeedSyncService].
func (e *FeedEngine) Subscribe() (<-chan models.SyncState, func()) {
	ch := make(chan models.SyncState, 1)

	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = ch
	ch <- e.state.Clone()
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subscribers, id)
			close(ch)
			e.mu.Unlock()
		})
	}

	return ch, cancel
}

// LoadInitial implements [FeedSyncService].
func (e *FeedEngine) LoadInitial(ctx context.Context) {
	e.mu.Lock()
	if e.inflight != models.OpNone {
		e.mu.Unlock()
		e.logDropped(models.OpLoadInitial)
		return
	}
	session := e.beginSessionLocked(models.OpLoadInitial)
	e.mu.Unlock()

	e.loadInitial(ctx, session)
}

// LoadMore implements [FeedSyncService].
func (e *FeedEngine) LoadMore(ctx context.Context) {
	e.mu.Lock()
	if !e.canLoadMoreLocked() {
		e.mu.Unlock()
		e.logDropped(models.OpLoadMore)
		return
	}
	session := e.session
	cursor := e.state.Cursor
	e.inflight = models.OpLoadMore
	e.state.Phase = models.PhaseLoadingMore
	e.publishLocked()
	e.mu.Unlock()

	log := e.logger.With().Str("session", session).Str("op", models.OpLoadMore.String()).Int("page", cursor).Logger()
	log.Debug().Msg("fetching page")

	page, err := e.remote.FetchPage(ctx, cursor)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != session {
		log.Debug().Msg("dropping response of a superseded session")
		return
	}
	e.inflight = models.OpNone

	switch {
	case err != nil:
		log.Warn().Err(err).Msg("fetch failed")
		e.failLocked(models.OpLoadMore, err)
	case page.IsEnd():
		log.Debug().Msg("end of feed reached")
		e.state.HasMore = false
		e.succeedLocked()
	default:
		e.state.Items = Merge(e.state.Items, page.Items)
		e.state.Cursor = cursor + 1
		log.Debug().Int("items", len(e.state.Items)).Msg("page appended")
		e.succeedLocked()
	}
	e.publishLocked()
}

// Refresh implements [FeedSyncService].
func (e *FeedEngine) Refresh(ctx context.Context) {
	e.mu.Lock()
	if e.inflight == models.OpRefresh {
		e.mu.Unlock()
		e.logDropped(models.OpRefresh)
		return
	}
	e.state.Cursor = 1
	e.state.HasMore = true
	session := e.beginSessionLocked(models.OpRefresh)
	e.mu.Unlock()

	log := e.logger.With().Str("session", session).Str("op", models.OpRefresh.String()).Logger()
	log.Debug().Msg("fetching page 1")

	page, err := e.remote.FetchPage(ctx, 1)

	fresh, ok := e.applyFirstPage(session, models.OpRefresh, nil, page, err)
	if ok {
		e.writeSnapshot(ctx, session, fresh)
	}
}

// Reset implements [FeedSyncService]. It is accepted in every phase.
func (e *FeedEngine) Reset(ctx context.Context) {
	// The session switch and the clear share one cacheMu section, so no
	// newer session can write a snapshot before the clear runs.
	e.cacheMu.Lock()
	e.mu.Lock()
	e.state = models.NewSyncState()
	e.state.Items = []models.FeedItem{}
	session := e.beginSessionLocked(models.OpLoadInitial)
	e.mu.Unlock()

	e.logger.Info().Str("session", session).Msg("feed reset")

	if err := e.cache.Clear(ctx); err != nil {
		e.logger.Warn().Err(err).Str("session", session).Msg("failed to clear cache")
		e.setCacheWarning(session, err)
	}
	e.cacheMu.Unlock()

	e.loadInitial(ctx, session)
}

// Retry implements [FeedSyncService]. It is a no-op outside the error phase.
func (e *FeedEngine) Retry(ctx context.Context) {
	e.mu.RLock()
	phase, failed := e.state.Phase, e.state.FailedOperation
	e.mu.RUnlock()

	if phase != models.PhaseError {
		e.logDropped(models.OpNone)
		return
	}

	switch failed {
	case models.OpLoadMore:
		e.LoadMore(ctx)
	case models.OpRefresh:
		e.Refresh(ctx)
	default:
		e.LoadInitial(ctx)
	}
}

// loadInitial runs the cache-then-network flow of LoadInitial for session.
func (e *FeedEngine) loadInitial(ctx context.Context, session string) {
	log := e.logger.With().Str("session", session).Str("op", models.OpLoadInitial.String()).Logger()

	cached := e.readSnapshot(ctx, session)
	if len(cached) > 0 {
		e.mu.Lock()
		if e.session == session {
			e.state.Items = cached
			e.state.FromCache = true
			e.publishLocked()
		}
		e.mu.Unlock()
		log.Debug().Int("items", len(cached)).Msg("showing cached snapshot")
	}

	if !e.isCurrent(session) {
		log.Debug().Msg("session superseded before fetch")
		return
	}

	log.Debug().Msg("fetching page 1")
	page, err := e.remote.FetchPage(ctx, 1)

	fresh, ok := e.applyFirstPage(session, models.OpLoadInitial, cached, page, err)
	if ok {
		e.writeSnapshot(ctx, session, fresh)
	}
}

// applyFirstPage applies the outcome of a page-1 fetch. base is merged in
// front of the fetched items. It returns the items to persist and true when
// a non-empty page was accepted.
func (e *FeedEngine) applyFirstPage(session string, op models.Operation, base []models.FeedItem, page models.Page, err error) ([]models.FeedItem, bool) {
	log := e.logger.With().Str("session", session).Str("op", op.String()).Int("page", 1).Logger()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != session {
		log.Debug().Msg("dropping response of a superseded session")
		return nil, false
	}
	e.inflight = models.OpNone
	defer e.publishLocked()

	if err != nil {
		log.Warn().Err(err).Msg("fetch failed")
		e.failLocked(op, err)
		return nil, false
	}

	if page.IsEnd() {
		log.Debug().Msg("page 1 is empty, feed has no items")
		e.state.HasMore = false
		e.succeedLocked()
		return nil, false
	}

	fresh := Merge(nil, page.Items)
	e.state.Items = Merge(base, fresh)
	e.state.Cursor = 2
	e.state.HasMore = true
	e.state.FromCache = false
	e.succeedLocked()
	log.Debug().Int("items", len(e.state.Items)).Msg("page 1 applied")

	return fresh, true
}

func (e *FeedEngine) readSnapshot(ctx context.Context, session string) []models.FeedItem {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if !e.isCurrent(session) {
		return nil
	}

	snapshot, ok, err := e.cache.Read(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Str("session", session).Msg("failed to read cache, continuing without it")
		e.setCacheWarning(session, err)
		return nil
	}
	if !ok {
		return nil
	}
	return Merge(nil, snapshot.Items)
}

func (e *FeedEngine) writeSnapshot(ctx context.Context, session string, items []models.FeedItem) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if !e.isCurrent(session) {
		e.logger.Debug().Str("session", session).Msg("skipping snapshot write of a superseded session")
		return
	}

	err := e.cache.Write(ctx, models.FeedSnapshot{Items: items})
	if err != nil {
		e.logger.Warn().Err(err).Str("session", session).Msg("failed to write snapshot")
	}
	e.setCacheWarning(session, err)
}

// beginSessionLocked opens a new session with op in flight and publishes
// the loading phase.
func (e *FeedEngine) beginSessionLocked(op models.Operation) string {
	e.session = e.ids.Generate()
	e.inflight = op
	e.state.Phase = op.Phase()
	e.publishLocked()
	return e.session
}

func (e *FeedEngine) canLoadMoreLocked() bool {
	if e.inflight != models.OpNone || !e.state.HasMore {
		return false
	}
	switch e.state.Phase {
	case models.PhaseIdle:
		return true
	case models.PhaseError:
		return e.state.FailedOperation == models.OpLoadMore
	default:
		return false
	}
}

func (e *FeedEngine) succeedLocked() {
	e.state.Phase = models.PhaseIdle
	e.state.LastError = nil
	e.state.FailedOperation = models.OpNone
}

func (e *FeedEngine) failLocked(op models.Operation, err error) {
	e.state.Phase = models.PhaseError
	e.state.LastError = err
	e.state.FailedOperation = op
}

func (e *FeedEngine) isCurrent(session string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session == session
}

// setCacheWarning records the outcome of a cache operation. A nil err clears
// the warning.
func (e *FeedEngine) setCacheWarning(session string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != session || (err == nil && e.state.CacheWarning == nil) {
		return
	}
	e.state.CacheWarning = err
	e.publishLocked()
}

// publishLocked hands the current state to every subscriber, replacing a
// value the subscriber has not read yet.
func (e *FeedEngine) publishLocked() {
	for _, ch := range e.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- e.state.Clone()
	}
}

func (e *FeedEngine) logDropped(op models.Operation) {
	e.mu.RLock()
	phase := e.state.Phase
	inflight := e.inflight
	e.mu.RUnlock()

	e.logger.Debug().
		Str("op", op.String()).
		Str("phase", phase.String()).
		Str("inflight", inflight.String()).
		Msg("trigger dropped")
}
