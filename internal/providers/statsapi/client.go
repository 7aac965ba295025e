package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
)

// TokenFunc returns the bearer token to attach, or "" for anonymous requests.
type TokenFunc func(ctx context.Context) string

// Config controls how the client reaches the stats backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	TokenFunc  TokenFunc
}

// ErrEmptyPlayerID is returned by FetchPlayer when no id is given.
var ErrEmptyPlayerID = errors.New("statsapi: empty player id")

// Client fetches player pages, filter options and the insight views from
// the stats backend.
type Client struct {
	baseURL    string
	httpClient httpDoer
	token      TokenFunc
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		token:      cfg.TokenFunc,
	}
}

// Name identifies this provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchPlayers retrieves one page of players. The query is forwarded unchanged.
func (c *Client) FetchPlayers(ctx context.Context, query url.Values) (players.Page, error) {
	var payload playersResponse
	if err := c.getJSON(ctx, providers.EndpointPlayers, query, &payload); err != nil {
		return players.Page{}, err
	}
	return mapPage(payload), nil
}

// FetchTeams retrieves the team abbreviations offered by the team filter.
func (c *Client) FetchTeams(ctx context.Context) ([]string, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, providers.EndpointTeams, nil, &payload); err != nil {
		return nil, err
	}
	return nonNilStrings(payload.Teams), nil
}

// FetchPositions retrieves the positions offered by the position filter.
func (c *Client) FetchPositions(ctx context.Context) ([]string, error) {
	var payload positionsResponse
	if err := c.getJSON(ctx, providers.EndpointPositions, nil, &payload); err != nil {
		return nil, err
	}
	return nonNilStrings(payload.Positions), nil
}

// FetchTrendingPlayers retrieves the hot players list.
func (c *Client) FetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error) {
	var payload trendingPlayersResponse
	if err := c.getJSON(ctx, providers.EndpointTrendingPlayers, nil, &payload); err != nil {
		return insights.TrendingPlayers{}, err
	}
	return mapTrendingPlayers(payload), nil
}

// FetchTrendingGames retrieves upcoming and live games.
func (c *Client) FetchTrendingGames(ctx context.Context) (insights.Games, error) {
	var payload trendingGamesResponse
	if err := c.getJSON(ctx, providers.EndpointTrendingGames, nil, &payload); err != nil {
		return insights.Games{}, err
	}
	return mapGames(payload), nil
}

// FetchPredictions retrieves the model leaderboards. The backend answers 503
// when its model is not loaded; that surfaces as a StatusError.
func (c *Client) FetchPredictions(ctx context.Context) (insights.Predictions, error) {
	var payload predictionsResponse
	if err := c.getJSON(ctx, providers.EndpointPredictions, nil, &payload); err != nil {
		return insights.Predictions{}, err
	}
	return mapPredictions(payload), nil
}

// FetchPlayer retrieves one player summary by id.
func (c *Client) FetchPlayer(ctx context.Context, id players.PlayerID) (players.Player, error) {
	raw := strings.TrimSpace(string(id))
	if raw == "" {
		return players.Player{}, ErrEmptyPlayerID
	}
	var player players.Player
	if err := c.getJSON(ctx, "players/"+url.PathEscape(raw), nil, &player); err != nil {
		return players.Player{}, err
	}
	return player, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, dest any) error {
	req, err := c.buildRequest(ctx, endpoint, query)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s request failed: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &providers.StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s response: %w", providerName, endpoint, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	if c.token != nil {
		if token := c.token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}
