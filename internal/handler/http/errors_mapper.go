package http

import (
	"errors"

	"github.com/MKhiriev/go-image-feed/models"
)

// Error codes of the Flickr REST API.
const (
	codeInvalidAPIKey = 100
	codeUnknownFormat = 111
	codeUnknownMethod = 112
	codeUnavailable   = 105
)

var errorCodeMap = map[error]int{
	ErrInvalidAPIKey:    codeInvalidAPIKey,
	ErrUnknownFormat:    codeUnknownFormat,
	ErrUnknownMethod:    codeUnknownMethod,
	ErrMethodNotAllowed: codeUnknownMethod,
}

func codeFromError(err error) int {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codeUnavailable
}

func failureResponse(err error) models.FlickrResponse {
	return models.FlickrResponse{
		Stat:    models.FlickrStatFail,
		Code:    codeFromError(err),
		Message: err.Error(),
	}
}
