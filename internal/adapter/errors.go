package adapter

import "errors"

var (
	ErrInvalidPage       = errors.New("invalid page index")
	ErrNetworkFailure    = errors.New("network failure")
	ErrServerFailure     = errors.New("server failure")
	ErrMalformedResponse = errors.New("malformed response")
)
