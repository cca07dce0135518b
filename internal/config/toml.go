package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// parseConfigFile reads a TOML file when path ends in .toml and a JSON file
// otherwise.
func parseConfigFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

// parseTOML decodes a TOML config file with the same layout as the JSON one.
// Keys it does not know are rejected so that typos do not go unnoticed.
func parseTOML(path string) (*StructuredConfig, error) {
	var fileCfg StructuredJSONConfig
	meta, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown toml config keys: %s", strings.Join(keys, ", "))
	}

	return fileCfg.structured(), nil
}
