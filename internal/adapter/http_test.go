// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteSource(t *testing.T, serverURL string) *httpRemoteSource {
	t.Helper()
	cfg := config.ClientRemote{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		Method:         config.DefaultRemoteMethod,
		PageSize:       3,
		RequestTimeout: 2 * time.Second,
	}

	r, err := NewHTTPRemoteSource(cfg, logger.Nop())
	require.NoError(t, err)
	return r.(*httpRemoteSource)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, envelope models.FlickrResponse) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(envelope))
}

func okEnvelope(page, pages int, photos ...models.FlickrPhoto) models.FlickrResponse {
	if photos == nil {
		photos = []models.FlickrPhoto{}
	}
	return models.FlickrResponse{
		Stat: models.FlickrStatOK,
		Photos: &models.FlickrPhotos{
			Page:    page,
			Pages:   pages,
			PerPage: 3,
			Total:   pages * 3,
			Photo:   photos,
		},
	}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPRemoteSource_InvalidConfig(t *testing.T) {
	_, err := NewHTTPRemoteSource(config.ClientRemote{BaseURL: "", PageSize: 20}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPRemoteSource(config.ClientRemote{BaseURL: "http://localhost", PageSize: 0}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://api.flickr.com/services/rest/", want: "https://api.flickr.com/services/rest"},
		{in: "  api.flickr.com/services/rest ", want: "https://api.flickr.com/services/rest"},
		{in: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── FetchPage ───────────────────────────────────────────────────────────────

func TestFetchPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		assert.Equal(t, config.DefaultRemoteMethod, q.Get("method"))
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("nojsoncallback"))
		assert.Equal(t, "url_s", q.Get("extras"))
		assert.Equal(t, "3", q.Get("per_page"))
		assert.Equal(t, "2", q.Get("page"))

		writeEnvelope(t, w, okEnvelope(2, 5,
			models.FlickrPhoto{ID: "4", Title: "four", URLSmall: "https://img/4.jpg"},
			models.FlickrPhoto{ID: "5", URLSmall: "https://img/5.jpg"},
			models.FlickrPhoto{ID: "6", Title: "six", URLSmall: "https://img/6.jpg"},
		))
	}))
	defer srv.Close()

	r := newTestRemoteSource(t, srv.URL)
	page, err := r.FetchPage(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Index)
	assert.Equal(t, []models.FeedItem{
		{ID: "4", ImageRef: "https://img/4.jpg", Title: "four"},
		{ID: "5", ImageRef: "https://img/5.jpg"},
		{ID: "6", ImageRef: "https://img/6.jpg", Title: "six"},
	}, page.Items)
}

func TestFetchPage_DropsIncompletePhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, okEnvelope(1, 1,
			models.FlickrPhoto{ID: "1", URLSmall: "https://img/1.jpg"},
			models.FlickrPhoto{ID: "2"},
			models.FlickrPhoto{URLSmall: "https://img/3.jpg"},
		))
	}))
	defer srv.Close()

	page, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.False(t, page.IsEnd())
}

func TestFetchPage_EmptyPageIsEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, okEnvelope(4, 3))
	}))
	defer srv.Close()

	page, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 4)

	require.NoError(t, err)
	assert.True(t, page.IsEnd())
	assert.Equal(t, 4, page.Index)
}

func TestFetchPage_PastLastPageIsEmpty(t *testing.T) {
	// Flickr keeps answering with the last page once the index overflows.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, okEnvelope(2, 2,
			models.FlickrPhoto{ID: "4", URLSmall: "https://img/4.jpg"},
		))
	}))
	defer srv.Close()

	page, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, page.IsEnd())
}

func TestFetchPage_MissingPageCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, okEnvelope(2, 0,
			models.FlickrPhoto{ID: "4", URLSmall: "https://img/4.jpg"},
		))
	}))
	defer srv.Close()

	page, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "4", page.Items[0].ID)
	assert.False(t, page.IsEnd())
}

func TestFetchPage_InvalidPage(t *testing.T) {
	r := newTestRemoteSource(t, "http://127.0.0.1:1")

	_, err := r.FetchPage(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = r.FetchPage(context.Background(), -3)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestFetchPage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	_, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerFailure)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchPage_StatFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, models.FlickrResponse{Stat: models.FlickrStatFail, Code: 100, Message: "Invalid API Key"})
	}))
	defer srv.Close()

	_, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerFailure)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestFetchPage_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "jsonFlickrApi({...})"},
		{name: "missing photos", body: `{"stat":"ok"}`},
		{name: "missing photo list", body: `{"stat":"ok","photos":{"page":1,"pages":1}}`},
		{name: "unknown stat", body: `{"stat":"maybe","photos":{"page":1,"pages":1,"photo":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			page, err := newTestRemoteSource(t, srv.URL).FetchPage(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Empty(t, page.Items)
		})
	}
}

func TestFetchPage_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestRemoteSource(t, url).FetchPage(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestFetchPage_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	r := newTestRemoteSource(t, srv.URL)
	r.client.SetTimeout(50 * time.Millisecond)

	_, err := r.FetchPage(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestFetchPage_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, okEnvelope(1, 1))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRemoteSource(t, srv.URL).FetchPage(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPage_OmitsEmptyAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["api_key"]
		assert.False(t, present)
		writeEnvelope(t, w, okEnvelope(1, 1))
	}))
	defer srv.Close()

	r := newTestRemoteSource(t, srv.URL)
	r.apiKey = ""

	_, err := r.FetchPage(context.Background(), 1)
	require.NoError(t, err)
}
