package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/server"
)

const (
	appName    = "wowp-data-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger(cfg, os.Stdout)
	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
		Output:  out,
	})
}
