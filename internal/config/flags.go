package config

import (
	"flag"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path of the encrypted user store
//	-k string   path of the store key file
//	-s string   session token signing secret
//
// os.Args is filtered to just these flags first, so parsing here does not
// collide with flags owned by other components (like -c/-config).
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-k", "-s"})

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.StringVar(&cfg.StoreFile, "f", cfg.StoreFile, "path of the encrypted user store")
	fs.StringVar(&cfg.KeyFile, "k", cfg.KeyFile, "path of the store key file")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session token signing secret")

	return fs.Parse(args)
}
