// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// FeedSnapshot is the durable projection of the feed: the items of page 1 as
// last successfully fetched. It is used to paint the feed before the network
// responds.
type FeedSnapshot struct {
	Items []FeedItem
}

// Len returns the number of items in the snapshot.
func (s FeedSnapshot) Len() int {
	return len(s.Items)
}

// EncodeSnapshot serializes the snapshot into its persisted form: a JSON array
// of feed items. A nil item list is stored as an empty array.
func EncodeSnapshot(s FeedSnapshot) ([]byte, error) {
	items := s.Items
	if items == nil {
		items = []FeedItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode feed snapshot: %w", err)
	}
	return payload, nil
}

// DecodeSnapshot parses a persisted snapshot. Items violating the FeedItem
// invariants make the whole payload invalid.
func DecodeSnapshot(payload []byte) (FeedSnapshot, error) {
	var items []FeedItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return FeedSnapshot{}, fmt.Errorf("decode feed snapshot: %w", err)
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return FeedSnapshot{}, fmt.Errorf("decode feed snapshot item %d: %w", i, err)
		}
	}

	return FeedSnapshot{Items: items}, nil
}
