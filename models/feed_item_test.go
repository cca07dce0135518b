package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedItem_Validate(t *testing.T) {
	assert.NoError(t, FeedItem{ID: "1", ImageRef: "https://img/1.jpg"}.Validate())
	assert.NoError(t, FeedItem{ID: "1"}.Validate())
	assert.ErrorIs(t, FeedItem{ImageRef: "https://img/1.jpg"}.Validate(), ErrEmptyFeedItemID)
}

func TestFeedItem_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		item FeedItem
		want string
	}{
		{name: "title wins", item: FeedItem{ID: "1", ImageRef: "u", Title: "Sunset"}, want: "Sunset"},
		{name: "falls back to image ref", item: FeedItem{ID: "1", ImageRef: "u"}, want: "u"},
		{name: "both empty", item: FeedItem{ID: "1"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DisplayName())
		})
	}
}

func TestPage_IsEnd(t *testing.T) {
	assert.True(t, Page{Index: 3}.IsEnd())
	assert.True(t, Page{Index: 3, Items: []FeedItem{}}.IsEnd())
	assert.False(t, Page{Index: 1, Items: []FeedItem{{ID: "a"}}}.IsEnd())
}

func TestFlickrPhoto_FeedItem(t *testing.T) {
	item, ok := FlickrPhoto{ID: "42", Title: "cat", URLSmall: "https://live.staticflickr.com/42_s.jpg"}.FeedItem()
	assert.True(t, ok)
	assert.Equal(t, FeedItem{ID: "42", ImageRef: "https://live.staticflickr.com/42_s.jpg", Title: "cat"}, item)

	_, ok = FlickrPhoto{ID: "42"}.FeedItem()
	assert.False(t, ok)

	_, ok = FlickrPhoto{URLSmall: "https://live.staticflickr.com/42_s.jpg"}.FeedItem()
	assert.False(t, ok)
}
