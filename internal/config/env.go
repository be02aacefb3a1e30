package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays values from the environment onto cfg. Variables that
// are not set leave the current (default) values untouched.
func parseEnv(cfg *Config) error {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return fmt.Errorf("parsing env vars: %w", err)
	}
	return nil
}
