package main

import (
	"context"
	"os"

	"github.com/authdesk/authdesk/internal/cli"
	"github.com/authdesk/authdesk/internal/config"
	"github.com/authdesk/authdesk/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
