package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPhotoID    = errors.New("photo id is required")
	ErrInvalidImageURL = errors.New("invalid image url")
	ErrEmptyCatalogue  = errors.New("photo list cannot be empty")
	ErrDuplicateID     = errors.New("duplicate photo id")
)
