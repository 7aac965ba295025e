package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers/statsapi"
)

const (
	providerFixture  = "fixture"
	providerStatsAPI = "statsapi"
)

func selectProvider(cfg config.Config, token statsapi.TokenFunc, logger *slog.Logger) providers.StatsProvider {
	switch strings.ToLower(cfg.Provider) {
	case providerFixture:
		return fixture.New()
	case providerStatsAPI, "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL:   cfg.StatsAPI.BaseURL,
			Timeout:   cfg.StatsAPI.Timeout,
			TokenFunc: token,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
