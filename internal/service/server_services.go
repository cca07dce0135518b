package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/validators"
	"github.com/MKhiriev/go-image-feed/models"
)

// ErrEmptyCatalogue is returned when the server has nothing to serve.
var ErrEmptyCatalogue = errors.New("catalogue is empty")

// Services groups the services of the development feed server.
type Services struct {
	Catalogue      CatalogueService
	AppInfoService AppInfoService
}

// NewServices builds the server services. The catalogue is read from
// cfg.FixturePath when set and must pass [validators.PhotoValidator],
// otherwise cfg.TotalItems photos are generated.
func NewServices(cfg config.Server, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	log.Info().Msg("creating new services...")

	var source CatalogueService
	if path := strings.TrimSpace(cfg.FixturePath); path != "" {
		photos, err := LoadCatalogueFixture(path)
		if err != nil {
			return nil, fmt.Errorf("load catalogue: %w", err)
		}
		if err = validators.NewPhotoValidator().Validate(context.Background(), photos); err != nil {
			return nil, fmt.Errorf("validate catalogue %q: %w", path, err)
		}
		source = NewCatalogue(photos)
	} else {
		source = NewGeneratedCatalogue(cfg.TotalItems)
	}

	if source.Total() == 0 {
		return nil, ErrEmptyCatalogue
	}
	log.Info().Int("photos", source.Total()).Msg("catalogue loaded")

	return &Services{
		Catalogue:      source,
		AppInfoService: NewAppInfoService(buildInfo),
	}, nil
}
