package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gameday-hub/internal/config"
	"gameday-hub/internal/logging"
	"gameday-hub/internal/runner"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_GAMEDAY_RUN") == "1" {
		return
	}

	cfg, cfgErr := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "gameday-hub",
		Version: appVersion,
	})
	if cfgErr != nil {
		logging.Warn(logger, "invalid configuration values ignored, using their defaults", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.New(cfg, logger).Run(ctx); err != nil {
		logging.Error(logger, "render failed", err)
		stop()
		os.Exit(1)
	}
}
