package fixture

import (
	"context"
	"net/http"
	"sort"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
)

const (
	trendingLimit    = 5
	leaderboardLimit = 10
	trendThreshold   = 0.5
	breakoutPercent  = 5.0
	trendingSource   = "fixture"
)

var upcomingGames = []insights.Game{
	{AwayTeam: "BOS", HomeTeam: "LAL", Time: "7:30 PM ET"},
	{AwayTeam: "DEN", HomeTeam: "OKC", Time: "8:00 PM ET"},
	{AwayTeam: "MIL", HomeTeam: "CLE", Time: "7:00 PM ET"},
}

var liveGames = []insights.Game{
	{AwayTeam: "GSW", HomeTeam: "MIN", AwayScore: 88, HomeScore: 91, TimeRemaining: "Q4 5:12"},
}

// FetchTrendingPlayers ranks the roster by scoring trend magnitude.
func (p *Provider) FetchTrendingPlayers(ctx context.Context) (insights.TrendingPlayers, error) {
	if err := ctx.Err(); err != nil {
		return insights.TrendingPlayers{}, err
	}
	ranked := make([]players.Player, len(p.roster))
	copy(ranked, p.roster)
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Trend(players.TrendPPG)) > abs(ranked[j].Trend(players.TrendPPG))
	})
	if len(ranked) > trendingLimit {
		ranked = ranked[:trendingLimit]
	}

	out := insights.TrendingPlayers{Players: make([]insights.TrendingPlayer, 0, len(ranked)), Source: trendingSource}
	for _, pl := range ranked {
		out.Players = append(out.Players, insights.TrendingPlayer{
			Name:  pl.Name,
			Team:  pl.Team,
			PPG:   pl.Stat(players.StatPPG),
			APG:   pl.Stat(players.StatAPG),
			RPG:   pl.Stat(players.StatRPG),
			Trend: trendLabel(pl.Trend(players.TrendPPG)),
		})
	}
	return out, nil
}

// FetchTrendingGames returns a fixed slate of games.
func (p *Provider) FetchTrendingGames(ctx context.Context) (insights.Games, error) {
	if err := ctx.Err(); err != nil {
		return insights.Games{}, err
	}
	out := insights.Games{
		Upcoming: make([]insights.Game, 0, len(upcomingGames)),
		Live:     make([]insights.Game, 0, len(liveGames)),
	}
	for _, g := range upcomingGames {
		out.Upcoming = append(out.Upcoming, insights.UpcomingDefaults(g))
	}
	for _, g := range liveGames {
		out.Live = append(out.Live, insights.LiveDefaults(g))
	}
	return out, nil
}

// FetchPredictions projects each player's line forward by their scoring
// trend and ranks the result.
func (p *Provider) FetchPredictions(ctx context.Context) (insights.Predictions, error) {
	if err := ctx.Err(); err != nil {
		return insights.Predictions{}, err
	}
	all := make([]insights.Prediction, 0, len(p.roster))
	for _, pl := range p.roster {
		all = append(all, project(pl))
	}

	breakout := make([]insights.Prediction, 0, len(all))
	for _, pr := range all {
		if pr.PPGLast > 0 && (pr.PredictedPPG-pr.PPGLast)/pr.PPGLast*100 > breakoutPercent {
			breakout = append(breakout, pr)
		}
	}

	return insights.Predictions{
		TopScorers:    topBy(all, func(pr insights.Prediction) float64 { return pr.PredictedPPG }),
		TopAssists:    topBy(all, func(pr insights.Prediction) float64 { return pr.PredictedAPG }),
		TopRebounders: topBy(all, func(pr insights.Prediction) float64 { return pr.PredictedRPG }),
		Breakout:      topBy(breakout, func(pr insights.Prediction) float64 { return pr.PredictedPPG - pr.PPGLast }),
	}, nil
}

// FetchPlayer looks a player up by id. Unknown ids answer like the backend
// does, with a 404 status error.
func (p *Provider) FetchPlayer(ctx context.Context, id players.PlayerID) (players.Player, error) {
	if err := ctx.Err(); err != nil {
		return players.Player{}, err
	}
	for _, pl := range p.roster {
		if pl.ID == id {
			return pl, nil
		}
	}
	return players.Player{}, &providers.StatusError{
		Endpoint:   "players/" + string(id),
		StatusCode: http.StatusNotFound,
		Body:       `{"error": "Player not found"}`,
	}
}

func project(pl players.Player) insights.Prediction {
	ppg := pl.Stat(players.StatPPG)
	return insights.Prediction{
		Name:         pl.Name,
		Team:         pl.Team,
		Position:     pl.Position,
		PredictedPPG: ppg + pl.Trend(players.TrendPPG),
		PredictedAPG: pl.Stat(players.StatAPG),
		PredictedRPG: pl.Stat(players.StatRPG),
		PPGLast:      ppg,
		APGLast:      pl.Stat(players.StatAPG),
		RPGLast:      pl.Stat(players.StatRPG),
	}
}

func topBy(list []insights.Prediction, key func(insights.Prediction) float64) []insights.Prediction {
	out := make([]insights.Prediction, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	if len(out) > leaderboardLimit {
		out = out[:leaderboardLimit]
	}
	return out
}

func trendLabel(delta float64) string {
	switch {
	case delta > trendThreshold:
		return insights.TrendUp
	case delta < -trendThreshold:
		return insights.TrendDown
	default:
		return insights.TrendSteady
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
