package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-image-feed/models"
)

func items(ids ...string) []models.FeedItem {
	out := make([]models.FeedItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.FeedItem{ID: id, ImageRef: "https://img/" + id + ".jpg"})
	}
	return out
}

func ids(items []models.FeedItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.FeedItem
		incoming []models.FeedItem
		want     []string
	}{
		{name: "both empty", want: []string{}},
		{name: "empty existing", incoming: items("1", "2"), want: []string{"1", "2"}},
		{name: "empty incoming", existing: items("1", "2"), want: []string{"1", "2"}},
		{name: "disjoint", existing: items("1", "2"), incoming: items("3", "4"), want: []string{"1", "2", "3", "4"}},
		{name: "overlap keeps existing position", existing: items("1", "2", "3"), incoming: items("3", "1", "4"), want: []string{"1", "2", "3", "4"}},
		{name: "full overlap", existing: items("1", "2"), incoming: items("2", "1"), want: []string{"1", "2"}},
		{name: "duplicates inside incoming", incoming: items("5", "6", "5"), want: []string{"5", "6"}},
		{name: "empty ids dropped", existing: items("1"), incoming: items("", "2"), want: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Merge(tt.existing, tt.incoming)))
		})
	}
}

func TestMerge_FirstOccurrenceWins(t *testing.T) {
	existing := []models.FeedItem{{ID: "1", ImageRef: "old", Title: "old"}}
	incoming := []models.FeedItem{{ID: "1", ImageRef: "new", Title: "new"}, {ID: "2", ImageRef: "a"}, {ID: "2", ImageRef: "b"}}

	got := Merge(existing, incoming)

	assert.Equal(t, []models.FeedItem{
		{ID: "1", ImageRef: "old", Title: "old"},
		{ID: "2", ImageRef: "a"},
	}, got)
}

func TestMerge_Idempotent(t *testing.T) {
	cases := [][2][]models.FeedItem{
		{items("1", "2"), items("2", "3")},
		{nil, items("1", "1", "2")},
		{items("1"), nil},
		{items("4", "3", "2", "1"), items("1", "5", "4", "6")},
	}

	for i, c := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			once := Merge(c[0], c[1])
			twice := Merge(once, c[1])
			assert.Equal(t, once, twice)
		})
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	existing := make([]models.FeedItem, 1, 8)
	existing[0] = models.FeedItem{ID: "1"}

	got := Merge(existing, items("2"))
	got[0].ID = "changed"

	assert.Equal(t, "1", existing[0].ID)
	assert.Len(t, existing, 1)
}

func TestMerge_ConcatenatesDisjointPages(t *testing.T) {
	pages := [][]models.FeedItem{items("1", "2", "3"), items("4", "5"), items("6")}

	var acc []models.FeedItem
	var want []string
	for _, p := range pages {
		acc = Merge(acc, p)
		want = append(want, ids(p)...)
	}

	assert.Equal(t, want, ids(acc))
}
