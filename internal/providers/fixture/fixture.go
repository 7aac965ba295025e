package fixture

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	maxSearchLen = 50
	maxFilterLen = 10
)

// Provider serves a static roster with the same filtering and pagination
// rules as the stats backend. Useful for local runs and tests.
type Provider struct {
	roster []players.Player
}

// New creates a fixture provider over the built-in roster.
func New() *Provider {
	return NewWithRoster(defaultRoster())
}

// NewWithRoster creates a fixture provider over the given players.
func NewWithRoster(roster []players.Player) *Provider {
	return &Provider{roster: roster}
}

// Name identifies this provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchPlayers filters, then paginates the roster.
func (p *Provider) FetchPlayers(ctx context.Context, query url.Values) (players.Page, error) {
	if err := ctx.Err(); err != nil {
		return players.Page{}, err
	}

	page, limit := parsePagination(query.Get("page"), query.Get("limit"))
	search := strings.ToLower(sanitize(query.Get("search"), maxSearchLen))
	team := strings.ToUpper(sanitize(query.Get("team"), maxFilterLen))
	position := strings.ToUpper(sanitize(query.Get("position"), maxFilterLen))

	filtered := make([]players.Player, 0, len(p.roster))
	for _, player := range p.roster {
		if search != "" && !strings.Contains(strings.ToLower(player.Name), search) {
			continue
		}
		if team != "" && player.Team != team {
			continue
		}
		if position != "" && player.Position != position {
			continue
		}
		filtered = append(filtered, player)
	}

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	totalPages := (len(filtered) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	out := make([]players.Player, end-start)
	copy(out, filtered[start:end])
	return players.Page{
		Players:    out,
		TotalPages: totalPages,
		Total:      len(filtered),
	}, nil
}

// FetchTeams returns the distinct teams on the roster, sorted.
func (p *Provider) FetchTeams(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.distinct(func(pl players.Player) string { return pl.Team }), nil
}

// FetchPositions returns the distinct positions on the roster, sorted.
func (p *Provider) FetchPositions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.distinct(func(pl players.Player) string { return pl.Position }), nil
}

func (p *Provider) distinct(field func(players.Player) string) []string {
	seen := make(map[string]struct{}, len(p.roster))
	values := make([]string, 0, len(p.roster))
	for _, player := range p.roster {
		v := field(player)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func parsePagination(rawPage, rawLimit string) (int, int) {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	switch {
	case err != nil:
		limit = defaultLimit
	case limit < 1:
		limit = 1
	case limit > maxLimit:
		limit = maxLimit
	}
	return page, limit
}

func sanitize(value string, maxLen int) string {
	if len(value) > maxLen {
		value = value[:maxLen]
	}
	return strings.TrimSpace(value)
}
