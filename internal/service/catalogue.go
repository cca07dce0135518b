// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-image-feed/models"
)

// MaxPerPage is the largest page size the catalogue hands out.
const MaxPerPage = 500

// DefaultPerPage is used when a request does not specify a page size.
const DefaultPerPage = 100

type catalogue struct {
	photos []models.FlickrPhoto
}

// NewCatalogue serves photos in the given order.
func NewCatalogue(photos []models.FlickrPhoto) CatalogueService {
	c := &catalogue{photos: make([]models.FlickrPhoto, len(photos))}
	copy(c.photos, photos)
	return c
}

// NewGeneratedCatalogue builds a catalogue of total placeholder photos with
// ids "1".."total", newest first.
func NewGeneratedCatalogue(total int) CatalogueService {
	photos := make([]models.FlickrPhoto, 0, total)
	for i := total; i >= 1; i-- {
		id := strconv.Itoa(i)
		photos = append(photos, models.FlickrPhoto{
			ID:       id,
			Owner:    "dev-server",
			Title:    "Photo " + id,
			URLSmall: fmt.Sprintf("https://picsum.photos/id/%d/240/160", i%1000),
		})
	}
	return &catalogue{photos: photos}
}

// LoadCatalogueFixture reads a JSON array of photos ({id, title, url_s}).
func LoadCatalogueFixture(path string) ([]models.FlickrPhoto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue fixture: %w", err)
	}

	var photos []models.FlickrPhoto
	if err = json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("decode catalogue fixture %q: %w", path, err)
	}
	return photos, nil
}

func (c *catalogue) Page(_ context.Context, page, perPage int) models.FlickrPhotos {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}

	total := len(c.photos)
	pages := (total + perPage - 1) / perPage

	result := models.FlickrPhotos{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		Photo:   []models.FlickrPhoto{},
	}

	if page > pages {
		return result
	}
	from := (page - 1) * perPage
	to := min(from+perPage, total)

	result.Photo = append(result.Photo, c.photos[from:to]...)
	return result
}

func (c *catalogue) Total() int {
	return len(c.photos)
}
