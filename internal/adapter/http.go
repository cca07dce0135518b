package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const smallImageExtra = "url_s"

type httpRemoteSource struct {
	client  *resty.Client
	limiter *rate.Limiter

	apiKey   string
	method   string
	pageSize int

	logger *logger.Logger
}

// NewHTTPRemoteSource constructs an HTTP/REST implementation of
// [RemoteSource] for Flickr-compatible feeds. It normalises and validates the
// base URL, configures the request timeout and paces requests with a token
// bucket of cfg.RequestsPerSecond (zero disables pacing).
//
// Returns an error if cfg.BaseURL cannot be parsed or cfg.PageSize is not
// positive.
func NewHTTPRemoteSource(cfg config.ClientRemote, log *logger.Logger) (RemoteSource, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("invalid remote page size: %d", cfg.PageSize)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &httpRemoteSource{
		client:   client,
		limiter:  limiter,
		apiKey:   cfg.APIKey,
		method:   cfg.Method,
		pageSize: cfg.PageSize,
		logger:   log.WithComponent("remote"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPage implements [RemoteSource]. It GETs
// {base}/?method=...&page=P&per_page=N&extras=url_s and converts the photos of
// the envelope into feed items, dropping entries without an id or image URL.
// A page past the last page reported by the server is returned empty.
func (h *httpRemoteSource) FetchPage(ctx context.Context, page int) (models.Page, error) {
	if page < 1 {
		return models.Page{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return models.Page{}, fmt.Errorf("%w: wait for rate limiter: %w", ErrNetworkFailure, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(h.queryParams(page)).
		Get("/")
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: fetch page %d: %w", ErrNetworkFailure, page, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, fmt.Errorf("fetch page %d: %w", page, err)
	}

	var envelope models.FlickrResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Page{}, fmt.Errorf("%w: decode page %d: %w", ErrMalformedResponse, page, err)
	}
	if err = mapEnvelopeError(envelope); err != nil {
		return models.Page{}, fmt.Errorf("fetch page %d: %w", page, err)
	}
	if envelope.Photos == nil || envelope.Photos.Photo == nil {
		return models.Page{}, fmt.Errorf("%w: page %d has no photo list", ErrMalformedResponse, page)
	}

	result := models.Page{Index: page, Items: make([]models.FeedItem, 0, len(envelope.Photos.Photo))}
	if envelope.Photos.Pages > 0 && page > envelope.Photos.Pages {
		h.logger.Debug().
			Int("page", page).
			Int("pages", envelope.Photos.Pages).
			Msg("requested page is past the end of the feed")
		return result, nil
	}

	dropped := 0
	for _, photo := range envelope.Photos.Photo {
		item, ok := photo.FeedItem()
		if !ok {
			dropped++
			continue
		}
		result.Items = append(result.Items, item)
	}

	h.logger.Debug().
		Int("page", page).
		Int("items", len(result.Items)).
		Int("dropped", dropped).
		Msg("page fetched")

	return result, nil
}

func (h *httpRemoteSource) queryParams(page int) map[string]string {
	params := map[string]string{
		"method":         h.method,
		"format":         "json",
		"nojsoncallback": "1",
		"extras":         smallImageExtra,
		"per_page":       strconv.Itoa(h.pageSize),
		"page":           strconv.Itoa(page),
	}
	if h.apiKey != "" {
		params["api_key"] = h.apiKey
	}
	return params
}
