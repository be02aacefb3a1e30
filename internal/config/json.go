package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/flagx"
)

// parseJSON overlays values from an optional JSON config file. The file
// path comes from the -c or -config flags; when neither is given, nothing
// is loaded. Only keys present in the file override earlier layers.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	fileCfg := &Config{}
	if err := json.Unmarshal(raw, fileCfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fileCfg.StoreFile != "" {
		cfg.StoreFile = fileCfg.StoreFile
	}
	if fileCfg.KeyFile != "" {
		cfg.KeyFile = fileCfg.KeyFile
	}
	if fileCfg.SecretKey != "" {
		cfg.SecretKey = fileCfg.SecretKey
	}

	return nil
}
