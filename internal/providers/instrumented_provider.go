package providers

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
)

// instrumentedProvider records latency and failures of every upstream call.
// It never retries: a failed fetch is reported and left to the user. Inner
// providers without the insights calls answer them with
// ErrProviderUnavailable.
type instrumentedProvider struct {
	inner   StatsProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps inner with logging and metrics.
func NewInstrumentedProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) Provider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context, query url.Values) (players.Page, error) {
	if p.inner == nil {
		return players.Page{}, ErrProviderUnavailable
	}
	start := time.Now()
	page, err := p.inner.FetchPlayers(ctx, query)
	p.observe(ctx, EndpointPlayers, start, err, logging.FieldCount, len(page.Players), logging.FieldPage, query.Get("page"))
	return page, err
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]string, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	teams, err := p.inner.FetchTeams(ctx)
	p.observe(ctx, EndpointTeams, start, err, logging.FieldCount, len(teams))
	return teams, err
}

func (p *instrumentedProvider) FetchPositions(ctx context.Context) ([]string, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	positions, err := p.inner.FetchPositions(ctx)
	p.observe(ctx, EndpointPositions, start, err, logging.FieldCount, len(positions))
	return positions, err
}

func (p *instrumentedProvider) FetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error) {
	inner, ok := p.insightSource()
	if !ok {
		return insights.TrendingPlayers{}, ErrProviderUnavailable
	}
	start := time.Now()
	trending, err := inner.FetchTrendingPlayers(ctx)
	p.observe(ctx, EndpointTrendingPlayers, start, err, logging.FieldCount, len(trending.Players))
	return trending, err
}

func (p *instrumentedProvider) FetchTrendingGames(ctx context.Context) (insights.Games, error) {
	inner, ok := p.insightSource()
	if !ok {
		return insights.Games{}, ErrProviderUnavailable
	}
	start := time.Now()
	games, err := inner.FetchTrendingGames(ctx)
	p.observe(ctx, EndpointTrendingGames, start, err, logging.FieldCount, len(games.Upcoming)+len(games.Live))
	return games, err
}

func (p *instrumentedProvider) FetchPredictions(ctx context.Context) (insights.Predictions, error) {
	inner, ok := p.insightSource()
	if !ok {
		return insights.Predictions{}, ErrProviderUnavailable
	}
	start := time.Now()
	predictions, err := inner.FetchPredictions(ctx)
	p.observe(ctx, EndpointPredictions, start, err, logging.FieldCount, len(predictions.TopScorers))
	return predictions, err
}

func (p *instrumentedProvider) FetchPlayer(ctx context.Context, id players.PlayerID) (players.Player, error) {
	inner, ok := p.insightSource()
	if !ok {
		return players.Player{}, ErrProviderUnavailable
	}
	start := time.Now()
	player, err := inner.FetchPlayer(ctx, id)
	p.observe(ctx, EndpointPlayer, start, err, logging.FieldPlayerID, string(id))
	return player, err
}

func (p *instrumentedProvider) insightSource() (InsightsProvider, bool) {
	inner, ok := p.inner.(InsightsProvider)
	return inner, ok
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, err error, args ...any) {
	duration := time.Since(start)
	p.metrics.RecordUpstreamCall(endpoint, duration, err)

	args = append(args,
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream fetch failed", append(args, "error", err)...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream fetch complete", args...)
}
