package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"stat": "ok"}, status: http.StatusOK, wantBody: `{"stat":"ok"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "custom status", data: []int{1, 2}, status: http.StatusMethodNotAllowed, wantBody: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSONP(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSONP(w, "jsonFlickrApi", map[string]string{"stat": "ok"}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/javascript", w.Header().Get("Content-Type"))
	assert.Equal(t, `jsonFlickrApi({"stat":"ok"})`, w.Body.String())
}

func TestWriteJSONP_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSONP(w, "cb", func() {}, http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
