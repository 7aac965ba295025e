package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers/statsapi"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	token   statsapi.TokenFunc
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, token statsapi.TokenFunc) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, token: token}
}

func (f providerFactory) build(cfg config.Config) providers.Provider {
	base := selectProvider(cfg, f.token, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.StatsProvider) providers.Provider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
