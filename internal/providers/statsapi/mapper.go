package statsapi

import (
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/insights"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

// mapPage applies the defaults for a missing or partial pagination block.
func mapPage(resp playersResponse) players.Page {
	page := players.Page{
		Players:    resp.Players,
		TotalPages: 1,
	}
	if page.Players == nil {
		page.Players = []players.Player{}
	}
	if resp.Pagination != nil {
		if resp.Pagination.TotalPages > 0 {
			page.TotalPages = resp.Pagination.TotalPages
		}
		if resp.Pagination.Total > 0 {
			page.Total = resp.Pagination.Total
		}
	}
	return page
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func mapTrendingPlayers(resp trendingPlayersResponse) insights.TrendingPlayers {
	out := insights.TrendingPlayers{
		Players: make([]insights.TrendingPlayer, 0, len(resp.TrendingPlayers)),
		Source:  resp.Source,
		Message: resp.Message,
	}
	for _, p := range resp.TrendingPlayers {
		out.Players = append(out.Players, insights.TrendingPlayer{
			Name:  p.Name,
			Team:  p.Team,
			PPG:   p.PPG,
			APG:   p.APG,
			RPG:   p.RPG,
			Trend: insights.NormalizeTrend(p.Trend),
		})
	}
	return out
}

func mapGames(resp trendingGamesResponse) insights.Games {
	out := insights.Games{
		Upcoming: make([]insights.Game, 0, len(resp.UpcomingGames)),
		Live:     make([]insights.Game, 0, len(resp.LiveGames)),
	}
	for _, g := range resp.UpcomingGames {
		out.Upcoming = append(out.Upcoming, insights.UpcomingDefaults(mapGame(g)))
	}
	for _, g := range resp.LiveGames {
		out.Live = append(out.Live, insights.LiveDefaults(mapGame(g)))
	}
	return out
}

func mapGame(g gamePayload) insights.Game {
	return insights.Game{
		AwayTeam:      g.AwayTeam,
		HomeTeam:      g.HomeTeam,
		AwayScore:     g.AwayScore,
		HomeScore:     g.HomeScore,
		Time:          g.Time,
		Status:        g.Status,
		TimeRemaining: g.TimeRemaining,
	}
}

// mapPredictions turns each leaderboard into a non-nil slice; a missing
// predictions block yields empty boards.
func mapPredictions(resp predictionsResponse) insights.Predictions {
	groups := predictionGroups{}
	if resp.Predictions != nil {
		groups = *resp.Predictions
	}
	return insights.Predictions{
		TopScorers:    mapPredictionList(groups.TopScorers),
		TopAssists:    mapPredictionList(groups.TopAssists),
		TopRebounders: mapPredictionList(groups.TopRebounders),
		Breakout:      mapPredictionList(groups.Breakout),
	}
}

func mapPredictionList(list []predictionPayload) []insights.Prediction {
	out := make([]insights.Prediction, 0, len(list))
	for _, p := range list {
		out = append(out, insights.Prediction{
			Name:         p.PlayerName,
			Team:         p.Team,
			Position:     p.Position,
			PredictedPPG: p.PredictedPPG,
			PredictedAPG: p.PredictedAPG,
			PredictedRPG: p.PredictedRPG,
			PPGLast:      p.PPGLast,
			APGLast:      p.APGLast,
			RPGLast:      p.RPGLast,
		})
	}
	return out
}
