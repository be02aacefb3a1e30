// Package config assembles runtime settings for the vault and its CLI:
// defaults, then environment variables, then an optional JSON file, then
// command-line flags, each layer overriding the previous one.
package config

// Config holds everything the process needs to open the vault.
//
// Fields:
//   - StoreFile: path of the encrypted user store blob.
//   - KeyFile: path of the symmetric store key (created on first use).
//   - SecretKey: HMAC secret for signing session tokens (HS256).
type Config struct {
	StoreFile string `env:"VAULT_STORE_FILE, overwrite" json:"store_file"`
	KeyFile   string `env:"VAULT_KEY_FILE, overwrite" json:"key_file"`
	SecretKey string `env:"VAULT_SECRET_KEY, overwrite" json:"secret_key"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key default is insecure and must be overridden in prod.
func (c *Config) LoadDefaults() {
	c.StoreFile = "users_secure.json"
	c.KeyFile = ".encryption_key"
	c.SecretKey = "secretKey"
}

// LoadConfig builds a Config by applying defaults, then overlaying
// environment variables, an optional JSON file, and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
