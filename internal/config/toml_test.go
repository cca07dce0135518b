package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParseTOML(t *testing.T) {
	p := writeConfigFile(t, "feed.toml", `
[app]
log_level = "info"

[remote]
base_url = "https://api.flickr.com/services/rest/"
page_size = 30
request_timeout = "12s"
requests_per_second = 2.5

[storage]
snapshot_key = "cachedImages"

[storage.db]
dsn = "/tmp/feed.db"

[server]
http_address = "localhost:8081"
total_items = 42
request_timeout = 5000000000

[workers]
refresh_interval = "2m"
`)

	cfg, err := parseTOML(p)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "https://api.flickr.com/services/rest/", cfg.Remote.BaseURL)
	assert.Equal(t, 30, cfg.Remote.PageSize)
	assert.Equal(t, 12*time.Second, cfg.Remote.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Remote.RequestsPerSecond, 1e-9)
	assert.Equal(t, "cachedImages", cfg.Storage.SnapshotKey)
	assert.Equal(t, "/tmp/feed.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 42, cfg.Server.TotalItems)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseTOML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax", content: "[remote\npage_size = 1", want: "error decoding toml configs"},
		{name: "bad duration", content: "[remote]\nrequest_timeout = \"soon\"", want: "error decoding toml configs"},
		{name: "unknown key", content: "[remote]\npage_sise = 20", want: "remote.page_sise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTOML(writeConfigFile(t, "bad.toml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := parseTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseConfigFile_DispatchesOnExtension(t *testing.T) {
	tomlPath := writeConfigFile(t, "cfg.TOML", "[remote]\npage_size = 7\n")
	jsonPath := writeConfigFile(t, "cfg.json", `{"remote":{"page_size":9}}`)

	cfg, err := parseConfigFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Remote.PageSize)

	cfg, err = parseConfigFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Remote.PageSize)
}
