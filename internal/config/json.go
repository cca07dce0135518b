package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StructuredJSONConfig is the on-disk layout of [StructuredConfig], shared by
// JSON and TOML files. Durations accept both Go duration strings ("15s") and
// nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level" toml:"log_level"`
		LogFile  string `json:"log_file" toml:"log_file"`
	} `json:"app,omitempty" toml:"app"`

	Remote struct {
		BaseURL           string   `json:"base_url" toml:"base_url"`
		APIKey            string   `json:"api_key" toml:"api_key"`
		Method            string   `json:"method" toml:"method"`
		PageSize          int      `json:"page_size" toml:"page_size"`
		RequestTimeout    Duration `json:"request_timeout" toml:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second" toml:"requests_per_second"`
	} `json:"remote,omitempty" toml:"remote"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
		SnapshotKey string `json:"snapshot_key" toml:"snapshot_key"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		FixturePath    string   `json:"fixture_path" toml:"fixture_path"`
		TotalItems     int      `json:"total_items" toml:"total_items"`
		APIKey         string   `json:"api_key" toml:"api_key"`
	} `json:"server,omitempty" toml:"server"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" toml:"refresh_interval"`
	} `json:"workers,omitempty" toml:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

func (c *StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: c.App.LogLevel,
			LogFile:  c.App.LogFile,
		},
		Remote: Remote{
			BaseURL:           c.Remote.BaseURL,
			APIKey:            c.Remote.APIKey,
			Method:            c.Remote.Method,
			PageSize:          c.Remote.PageSize,
			RequestTimeout:    time.Duration(c.Remote.RequestTimeout),
			RequestsPerSecond: c.Remote.RequestsPerSecond,
		},
		Storage: Storage{
			DB:          DB{DSN: c.Storage.DB.DSN},
			SnapshotKey: c.Storage.SnapshotKey,
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			GRPCAddress:    c.Server.GRPCAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			FixturePath:    c.Server.FixturePath,
			TotalItems:     c.Server.TotalItems,
			APIKey:         c.Server.APIKey,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(c.Workers.RefreshInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// UnmarshalText is used by the TOML decoder, which hands over integers as
// their decimal text.
func (d *Duration) UnmarshalText(b []byte) error {
	text := strings.TrimSpace(string(b))
	if ns, err := strconv.ParseInt(text, 10, 64); err == nil {
		*d = Duration(ns)
		return nil
	}

	tmp, err := time.ParseDuration(text)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
