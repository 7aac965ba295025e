package testutil

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
)

// StubProvider returns canned results and records every players query.
type StubProvider struct {
	mu        sync.Mutex
	Page      players.Page
	Teams     []string
	Positions []string
	Err       error
	OptionErr error
	queries   []url.Values
}

func (p *StubProvider) FetchPlayers(ctx context.Context, query url.Values) (players.Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, cloneValues(query))
	if p.Err != nil {
		return players.Page{}, p.Err
	}
	return p.Page, nil
}

func (p *StubProvider) FetchTeams(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.OptionErr != nil {
		return nil, p.OptionErr
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchPositions(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.OptionErr != nil {
		return nil, p.OptionErr
	}
	return p.Positions, nil
}

// SetErr swaps the error returned by FetchPlayers.
func (p *StubProvider) SetErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Err = err
}

// Calls returns how many player fetches were made.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

// LastQuery returns the most recent players query, or nil.
func (p *StubProvider) LastQuery() url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queries) == 0 {
		return nil
	}
	return p.queries[len(p.queries)-1]
}

// UnavailableProvider returns ErrProviderUnavailable from every call.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context, query url.Values) (players.Page, error) {
	return players.Page{}, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeams(ctx context.Context) ([]string, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchPositions(ctx context.Context) ([]string, error) {
	return nil, providers.ErrProviderUnavailable
}

// StubInsights returns canned insight views. Per-call errors override Err.
type StubInsights struct {
	mu          sync.Mutex
	Trending    insights.TrendingPlayers
	Games       insights.Games
	Predictions insights.Predictions
	Players     map[players.PlayerID]players.Player
	Err         error
	GamesErr    error
	calls       map[string]int
}

func (s *StubInsights) FetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countLocked(providers.EndpointTrendingPlayers)
	if s.Err != nil {
		return insights.TrendingPlayers{}, s.Err
	}
	return s.Trending, nil
}

func (s *StubInsights) FetchTrendingGames(ctx context.Context) (insights.Games, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countLocked(providers.EndpointTrendingGames)
	switch {
	case s.GamesErr != nil:
		return insights.Games{}, s.GamesErr
	case s.Err != nil:
		return insights.Games{}, s.Err
	}
	return s.Games, nil
}

func (s *StubInsights) FetchPredictions(ctx context.Context) (insights.Predictions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countLocked(providers.EndpointPredictions)
	if s.Err != nil {
		return insights.Predictions{}, s.Err
	}
	return s.Predictions, nil
}

func (s *StubInsights) FetchPlayer(ctx context.Context, id players.PlayerID) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countLocked(providers.EndpointPlayer)
	if s.Err != nil {
		return players.Player{}, s.Err
	}
	if p, ok := s.Players[id]; ok {
		return p, nil
	}
	return players.Player{}, &providers.StatusError{Endpoint: "players/" + string(id), StatusCode: http.StatusNotFound}
}

// SetErr swaps the error returned by every call.
func (s *StubInsights) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// Calls returns how many times an endpoint was fetched.
func (s *StubInsights) Calls(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

func (s *StubInsights) countLocked(endpoint string) {
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[endpoint]++
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
