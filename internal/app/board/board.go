// Package board drives the read-only views beside the statistics screen:
// trending players and games, model predictions, and player detail.
package board

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
)

// Messages shown in place of a view when its fetch fails outright.
const (
	TrendingErrorMessage    = "Failed to fetch trending data"
	PredictionsErrorMessage = "Failed to connect to AI server. Make sure the backend is running."
)

// ErrPlayerNotFound is returned when the backend has no player with the id.
var ErrPlayerNotFound = errors.New("player not found")

// Trending is the rendered trending view.
type Trending struct {
	Players  []insights.TrendingPlayer `json:"players"`
	Upcoming []insights.Game           `json:"upcoming_games"`
	Live     []insights.Game           `json:"live_games"`
	Source   string                    `json:"source,omitempty"`
	Message  string                    `json:"message,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// Predictions is the rendered predictions view.
type Predictions struct {
	insights.Predictions
	Error string `json:"error,omitempty"`
}

// Board serializes refreshes of the trending and predictions views. Each
// view keeps its last good data; a newer refresh supersedes an older one
// still in flight.
type Board struct {
	provider providers.InsightsProvider
	logger   *slog.Logger

	mu          sync.Mutex
	trending    Trending
	predictions Predictions
	trendSeq    uint64
	predSeq     uint64
}

// New constructs a Board over provider.
func New(provider providers.InsightsProvider, logger *slog.Logger) *Board {
	return &Board{
		provider:    provider,
		logger:      logger,
		trending:    emptyTrending(),
		predictions: Predictions{Predictions: emptyPredictions()},
	}
}

// RefreshTrending fetches trending players, then games. A non-OK answer for
// one list is logged and leaves that list as it was. Any other failure puts
// the view into its error state and skips the remaining fetch.
func (b *Board) RefreshTrending(ctx context.Context) Trending {
	b.mu.Lock()
	b.trendSeq++
	seq := b.trendSeq
	next := b.trending
	b.mu.Unlock()

	logger := logging.FromContext(ctx, b.logger)
	next.Error = ""

	hot, err := b.fetchTrendingPlayers(ctx)
	switch {
	case err == nil:
		next.Players = nonNilTrending(hot.Players)
		next.Source = hot.Source
		next.Message = hot.Message
		if len(hot.Players) == 0 && hot.Message != "" {
			logging.Warn(logger, "no trending players", "message", hot.Message)
		}
	case isStatus(err):
		logging.Warn(logger, "trending players rejected", "error", err)
	default:
		logging.Error(logger, "trending fetch failed", err)
		next.Error = TrendingErrorMessage
		return b.commitTrending(seq, next)
	}

	games, err := b.fetchTrendingGames(ctx)
	switch {
	case err == nil:
		next.Upcoming = nonNilGames(games.Upcoming)
		next.Live = nonNilGames(games.Live)
	case isStatus(err):
		logging.Warn(logger, "trending games rejected", "error", err)
	default:
		logging.Error(logger, "trending fetch failed", err)
		next.Error = TrendingErrorMessage
	}
	return b.commitTrending(seq, next)
}

// RefreshPredictions fetches the model leaderboards. Any failure shows the
// error message and keeps the last boards for the next success.
func (b *Board) RefreshPredictions(ctx context.Context) Predictions {
	b.mu.Lock()
	b.predSeq++
	seq := b.predSeq
	b.mu.Unlock()

	var (
		preds insights.Predictions
		err   error
	)
	if b.provider == nil {
		err = providers.ErrProviderUnavailable
	} else {
		preds, err = b.provider.FetchPredictions(ctx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.predSeq {
		logging.Debug(logging.FromContext(ctx, b.logger), "dropping superseded predictions response")
		return b.predictionsLocked()
	}
	if err != nil {
		logging.Error(logging.FromContext(ctx, b.logger), "predictions fetch failed", err)
		b.predictions.Error = PredictionsErrorMessage
		return b.predictionsLocked()
	}
	b.predictions = Predictions{Predictions: normalizePredictions(preds)}
	return b.predictionsLocked()
}

// Trending returns the current trending view without fetching.
func (b *Board) Trending() Trending {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trendingLocked()
}

// Predictions returns the current predictions view without fetching.
func (b *Board) Predictions() Predictions {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.predictionsLocked()
}

// Player fetches one player summary. A 404 from the backend maps to
// ErrPlayerNotFound; other failures are returned as is.
func (b *Board) Player(ctx context.Context, id players.PlayerID) (players.Player, error) {
	if b.provider == nil {
		return players.Player{}, providers.ErrProviderUnavailable
	}
	player, err := b.provider.FetchPlayer(ctx, id)
	if statusErr, ok := providers.AsStatusError(err); ok && statusErr.StatusCode == http.StatusNotFound {
		return players.Player{}, ErrPlayerNotFound
	}
	return player, err
}

func (b *Board) fetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error) {
	if b.provider == nil {
		return insights.TrendingPlayers{}, providers.ErrProviderUnavailable
	}
	return b.provider.FetchTrendingPlayers(ctx)
}

func (b *Board) fetchTrendingGames(ctx context.Context) (insights.Games, error) {
	if b.provider == nil {
		return insights.Games{}, providers.ErrProviderUnavailable
	}
	return b.provider.FetchTrendingGames(ctx)
}

func (b *Board) commitTrending(seq uint64, next Trending) Trending {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq == b.trendSeq {
		b.trending = next
	}
	return b.trendingLocked()
}

// trendingLocked renders the view; the error state hides the lists.
func (b *Board) trendingLocked() Trending {
	if b.trending.Error != "" {
		out := emptyTrending()
		out.Error = b.trending.Error
		return out
	}
	out := b.trending
	out.Players = append([]insights.TrendingPlayer{}, b.trending.Players...)
	out.Upcoming = append([]insights.Game{}, b.trending.Upcoming...)
	out.Live = append([]insights.Game{}, b.trending.Live...)
	return out
}

func (b *Board) predictionsLocked() Predictions {
	if b.predictions.Error != "" {
		return Predictions{Predictions: emptyPredictions(), Error: b.predictions.Error}
	}
	return Predictions{Predictions: normalizePredictions(b.predictions.Predictions)}
}

func isStatus(err error) bool {
	_, ok := providers.AsStatusError(err)
	return ok
}

func emptyTrending() Trending {
	return Trending{
		Players:  []insights.TrendingPlayer{},
		Upcoming: []insights.Game{},
		Live:     []insights.Game{},
	}
}

func emptyPredictions() insights.Predictions {
	return normalizePredictions(insights.Predictions{})
}

func normalizePredictions(p insights.Predictions) insights.Predictions {
	return insights.Predictions{
		TopScorers:    append([]insights.Prediction{}, p.TopScorers...),
		TopAssists:    append([]insights.Prediction{}, p.TopAssists...),
		TopRebounders: append([]insights.Prediction{}, p.TopRebounders...),
		Breakout:      append([]insights.Prediction{}, p.Breakout...),
	}
}

func nonNilTrending(list []insights.TrendingPlayer) []insights.TrendingPlayer {
	if list == nil {
		return []insights.TrendingPlayer{}
	}
	return list
}

func nonNilGames(list []insights.Game) []insights.Game {
	if list == nil {
		return []insights.Game{}
	}
	return list
}
