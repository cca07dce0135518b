package tui

import (
	"github.com/MKhiriev/go-image-feed/models"
)

// stateMsg carries a state published by the feed engine.
type stateMsg struct {
	state models.SyncState
}

// subscriptionClosedMsg is sent once the engine subscription is cancelled.
type subscriptionClosedMsg struct{}

// opDoneMsg reports that a blocking engine operation returned.
type opDoneMsg struct {
	op models.Operation
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
