package service

import (
	"context"

	"github.com/MKhiriev/go-image-feed/models"
)

// CatalogueService serves the image catalogue of the development feed
// server in pages.
type CatalogueService interface {
	// Page returns the 1-based page of perPage photos. A page past the end
	// is returned with an empty Photo list.
	Page(ctx context.Context, page, perPage int) models.FlickrPhotos
	// Total is the number of photos in the catalogue.
	Total() int
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
