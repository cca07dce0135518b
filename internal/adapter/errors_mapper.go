package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-image-feed/models"
	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrServerFailure, resp.StatusCode(), body)
}

func mapEnvelopeError(envelope models.FlickrResponse) error {
	if envelope.Stat == models.FlickrStatOK {
		return nil
	}
	if envelope.Stat == models.FlickrStatFail {
		return fmt.Errorf("%w: code %d: %s", ErrServerFailure, envelope.Code, envelope.Message)
	}
	return fmt.Errorf("%w: unexpected stat %q", ErrMalformedResponse, envelope.Stat)
}
