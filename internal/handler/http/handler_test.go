package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
)

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func newTestServices(total int) *service.Services {
	return &service.Services{
		Catalogue:      service.NewGeneratedCatalogue(total),
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestHandler(t *testing.T, cfg config.Server) *Handler {
	t.Helper()
	return NewHandler(newTestServices(7), cfg, logger.Nop())
}

func restURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return RESTPath + "/?" + q.Encode()
}

func serve(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── NewHandler ──────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := newTestServices(1)
	log := logger.Nop()

	h := NewHandler(svc, config.Server{APIKey: "k", RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "k", h.apiKey)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

// ── routes ──────────────────────────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	h := newTestHandler(t, config.Server{})

	for _, path := range []string{RESTPath, RESTPath + "/", "/api/version/"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, path)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := serve(t, newTestHandler(t, config.Server{}), http.MethodGet, "/api/nonexistent")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405Envelope(t *testing.T) {
	rec := serve(t, newTestHandler(t, config.Server{}), http.MethodPost, RESTPath+"/")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "fail", resp.Stat)
	assert.Equal(t, codeUnknownMethod, resp.Code)
	assert.Contains(t, resp.Message, "POST")
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	// AppInfoService is nil, so the handler panics
	rec := serve(t, h, http.MethodGet, "/api/version/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// ── version ─────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "special chars", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{version: tt.version}}, config.Server{}, logger.Nop())

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}
