package providers

import (
	"context"
	"net/url"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

// Endpoint names used in logs and metrics.
const (
	EndpointPlayers   = "players"
	EndpointTeams     = "teams"
	EndpointPositions = "positions"

	EndpointTrendingPlayers = "trending/players"
	EndpointTrendingGames   = "trending/games"
	EndpointPredictions     = "ai-predictions"
	EndpointPlayer          = "players/{id}"
)

// PlayerProvider fetches one server-filtered, server-paginated page of players.
// The query is sent verbatim; see viewmodel.QueryParams.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, query url.Values) (players.Page, error)
}

// FilterOptionsProvider fetches the values offered by the team and position filters.
type FilterOptionsProvider interface {
	FetchTeams(ctx context.Context) ([]string, error)
	FetchPositions(ctx context.Context) ([]string, error)
}

// StatsProvider combines all provider capabilities.
type StatsProvider interface {
	PlayerProvider
	FilterOptionsProvider
}

// InsightsProvider fetches the views shown beside the statistics screen.
type InsightsProvider interface {
	FetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error)
	FetchTrendingGames(ctx context.Context) (insights.Games, error)
	FetchPredictions(ctx context.Context) (insights.Predictions, error)
	FetchPlayer(ctx context.Context, id players.PlayerID) (players.Player, error)
}

// Provider is everything the service reads from the stats backend.
type Provider interface {
	StatsProvider
	InsightsProvider
}
