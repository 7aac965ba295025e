package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
	"github.com/preston-bernstein/nba-stats-viewer/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "nba-stats-viewer"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger()
	logger.Info("configuration loaded",
		slog.String("provider", cfg.Provider),
		slog.String(logging.FieldBackend, cfg.Storage.Backend),
		slog.String("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// newLogger builds the process logger from LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
		File:    os.Getenv("LOG_FILE"),
	})
}
