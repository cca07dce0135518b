package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSyncState(t *testing.T) {
	s := NewSyncState()

	assert.Empty(t, s.Items)
	assert.Equal(t, 1, s.Cursor)
	assert.Equal(t, PhaseLoadingInitial, s.Phase)
	assert.True(t, s.HasMore)
	assert.NoError(t, s.LastError)
	assert.Equal(t, OpNone, s.FailedOperation)
}

func TestSyncState_Clone(t *testing.T) {
	s := SyncState{
		Items:     []FeedItem{{ID: "1"}, {ID: "2"}},
		Cursor:    2,
		Phase:     PhaseError,
		LastError: errors.New("boom"),
	}

	c := s.Clone()
	c.Items[0].ID = "changed"
	c.Items = append(c.Items, FeedItem{ID: "3"})

	assert.Equal(t, "1", s.Items[0].ID)
	assert.Len(t, s.Items, 2)
	assert.Equal(t, s.LastError, c.LastError)
	assert.Equal(t, s.Cursor, c.Cursor)
}

func TestSyncState_CloneNilItems(t *testing.T) {
	c := NewSyncState().Clone()
	assert.Nil(t, c.Items)
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase   Phase
		name    string
		loading bool
	}{
		{PhaseIdle, "idle", false},
		{PhaseLoadingInitial, "loading_initial", true},
		{PhaseLoadingMore, "loading_more", true},
		{PhaseRefreshing, "refreshing", true},
		{PhaseError, "error", false},
		{Phase(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.phase.String())
			assert.Equal(t, tt.loading, tt.phase.IsLoading())
		})
	}
}

func TestOperation_Phase(t *testing.T) {
	assert.Equal(t, PhaseLoadingInitial, OpLoadInitial.Phase())
	assert.Equal(t, PhaseLoadingMore, OpLoadMore.Phase())
	assert.Equal(t, PhaseRefreshing, OpRefresh.Phase())
	assert.Equal(t, PhaseIdle, OpNone.Phase())

	assert.Equal(t, "load_more", OpLoadMore.String())
	assert.Equal(t, "none", OpNone.String())
}
