package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/config"
	"github.com/UdayAnalyst/visual-news/internal/logging"
	"github.com/UdayAnalyst/visual-news/internal/vault"
)

// App holds the console state: the vault, the reader for interactive
// input, and the session token of the currently logged-in account.
type App struct {
	config *config.Config
	vault  *vault.Vault
	log    logging.Logger
	reader *bufio.Reader

	userID       string
	userName     string
	sessionToken string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	v, err := vault.New(cfg.StoreFile, cfg.KeyFile, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		vault:  v,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessionToken != ""
}
