package service

import "github.com/MKhiriev/go-image-feed/models"

// Merge returns existing followed by the items of incoming whose ID is not
// yet present. The relative order of both inputs is kept, the first
// occurrence of an ID wins and items with an empty ID are dropped.
//
// Merge never modifies its arguments; the result is always a new slice, so
// Merge(Merge(a, b), b) equals Merge(a, b).
func Merge(existing, incoming []models.FeedItem) []models.FeedItem {
	merged := make([]models.FeedItem, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))

	for _, batch := range [][]models.FeedItem{existing, incoming} {
		for _, item := range batch {
			if item.Validate() != nil {
				continue
			}
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
