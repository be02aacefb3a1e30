package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/cli"
	"github.com/UdayAnalyst/visual-news/internal/config"
	"github.com/UdayAnalyst/visual-news/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
