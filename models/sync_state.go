// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the lifecycle phase of a feed synchronization session.
type Phase int

const (
	// PhaseIdle means no fetch is in flight and the last one succeeded.
	PhaseIdle Phase = iota
	// PhaseLoadingInitial means page 1 is being loaded after start, retry or reset.
	PhaseLoadingInitial
	// PhaseLoadingMore means the next page is being appended.
	PhaseLoadingMore
	// PhaseRefreshing means page 1 is being re-fetched to replace the feed.
	PhaseRefreshing
	// PhaseError means the last fetch failed; see SyncState.LastError.
	PhaseError
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoadingInitial:
		return "loading_initial"
	case PhaseLoadingMore:
		return "loading_more"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// IsLoading reports whether the phase corresponds to an in-flight fetch.
func (p Phase) IsLoading() bool {
	return p == PhaseLoadingInitial || p == PhaseLoadingMore || p == PhaseRefreshing
}

// Operation identifies a fetching engine operation.
type Operation int

const (
	OpNone Operation = iota
	OpLoadInitial
	OpLoadMore
	OpRefresh
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o {
	case OpLoadInitial:
		return "load_initial"
	case OpLoadMore:
		return "load_more"
	case OpRefresh:
		return "refresh"
	default:
		return "none"
	}
}

// Phase returns the phase the engine is in while the operation is in flight.
func (o Operation) Phase() Phase {
	switch o {
	case OpLoadInitial:
		return PhaseLoadingInitial
	case OpLoadMore:
		return PhaseLoadingMore
	case OpRefresh:
		return PhaseRefreshing
	default:
		return PhaseIdle
	}
}

// SyncState is the observable state of a feed synchronization session.
// Values handed out by the engine are copies and may be kept by the reader.
type SyncState struct {
	// Items are the accepted feed items in fetch order.
	Items []FeedItem
	// Cursor is the next page index to request.
	Cursor int
	// Phase is the current lifecycle phase.
	Phase Phase
	// HasMore is false once the remote source returned an empty page.
	HasMore bool
	// LastError is the last fetch failure, cleared by any successful fetch.
	LastError error
	// FailedOperation is the operation that moved the session into PhaseError.
	FailedOperation Operation
	// CacheWarning is the last non-fatal cache failure.
	CacheWarning error
	// FromCache is true while Items come from the snapshot only.
	FromCache bool
}

// NewSyncState returns the state of a freshly created session.
func NewSyncState() SyncState {
	return SyncState{
		Cursor:  1,
		Phase:   PhaseLoadingInitial,
		HasMore: true,
	}
}

// Clone returns a copy of the state that shares no memory with s.
func (s SyncState) Clone() SyncState {
	c := s
	if s.Items != nil {
		c.Items = make([]FeedItem, len(s.Items))
		copy(c.Items, s.Items)
	}
	return c
}
