// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrEmptyFeedItemID is returned by [FeedItem.Validate] for an item without
// an identifier.
var ErrEmptyFeedItemID = errors.New("feed item id is empty")

// FeedItem is a single displayable unit of the image feed.
//
// Two items with the same ID are the same logical item regardless of the
// values of the other fields.
type FeedItem struct {
	// ID is the opaque identifier assigned by the remote source. It is stable
	// across fetches of the same underlying image and never empty.
	ID string `json:"id"`

	// ImageRef locates the image asset (usually an absolute URL).
	ImageRef string `json:"imageRef"`

	// Title is an optional display label.
	Title string `json:"title,omitempty"`
}

// Validate reports whether the item satisfies the FeedItem invariants.
func (f FeedItem) Validate() error {
	if f.ID == "" {
		return ErrEmptyFeedItemID
	}
	return nil
}

// DisplayName returns the title, or the image reference when the title is
// empty.
func (f FeedItem) DisplayName() string {
	if f.Title != "" {
		return f.Title
	}
	return f.ImageRef
}
