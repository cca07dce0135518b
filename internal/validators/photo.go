package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-image-feed/models"
)

const (
	FieldID        = "id"
	FieldImageURL  = "url_s"
	FieldPhotos    = "photos"
	FieldUniqueIDs = "unique_ids"
)

// PhotoValidator validates catalogue photos. A photo without url_s is
// allowed: clients skip such entries, and fixtures use them to exercise
// that path.
type PhotoValidator struct{}

func NewPhotoValidator() Validator {
	return &PhotoValidator{}
}

func (v *PhotoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FlickrPhoto:
		return v.validatePhoto(ctx, value, fields...)
	case *models.FlickrPhoto:
		return v.validatePhoto(ctx, *value, fields...)

	case []models.FlickrPhoto:
		return v.validatePhotos(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PhotoValidator) validatePhoto(_ context.Context, photo models.FlickrPhoto, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(photo.ID) == "" {
				return ErrEmptyPhotoID
			}
		case FieldImageURL:
			if photo.URLSmall == "" {
				continue
			}
			if !isHTTPURL(photo.URLSmall) {
				return fmt.Errorf("%w: %q", ErrInvalidImageURL, photo.URLSmall)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PhotoValidator) validatePhotos(ctx context.Context, photos []models.FlickrPhoto, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhotos, FieldUniqueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldPhotos:
			if len(photos) == 0 {
				return ErrEmptyCatalogue
			}
			for i, photo := range photos {
				if err := v.validatePhoto(ctx, photo); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldUniqueIDs:
			seen := make(map[string]int, len(photos))
			for i, photo := range photos {
				if first, ok := seen[photo.ID]; ok {
					return fmt.Errorf("%w %q at index %d and %d", ErrDuplicateID, photo.ID, first, i)
				}
				seen[photo.ID] = i
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
