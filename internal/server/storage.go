package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/kvstore"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

// buildStorage opens the configured key-value backend. Any failure falls back
// to the in-memory store so the screen stays usable.
func buildStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) kvstore.Store {
	store, err := openStorage(ctx, cfg)
	if err != nil {
		logging.Warn(logger, "storage unavailable, falling back to memory", "error", err,
			slog.String(logging.FieldBackend, cfg.Backend))
		return kvstore.NewMemoryStore()
	}
	logging.Info(logger, "storage ready", slog.String(logging.FieldBackend, cfg.Backend))
	return store
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (kvstore.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return kvstore.NewFileStore(cfg.Path), nil
	case config.BackendSQLite:
		return kvstore.OpenSQLite(ctx, cfg.Path)
	case config.BackendRedis:
		return kvstore.OpenRedis(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		return kvstore.NewMemoryStore(), nil
	}
}
