package statsapi

import "github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"

type playersResponse struct {
	Players    []players.Player `json:"players"`
	Pagination *paginationMeta  `json:"pagination"`
}

type paginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type teamsResponse struct {
	Teams []string `json:"teams"`
}

type positionsResponse struct {
	Positions []string `json:"positions"`
}

type trendingPlayersResponse struct {
	TrendingPlayers []trendingPlayerPayload `json:"trending_players"`
	Source          string                  `json:"source"`
	Message         string                  `json:"message"`
}

type trendingPlayerPayload struct {
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	PPG   float64 `json:"ppg"`
	APG   float64 `json:"apg"`
	RPG   float64 `json:"rpg"`
	Trend string  `json:"trend"`
}

type trendingGamesResponse struct {
	UpcomingGames []gamePayload `json:"upcoming_games"`
	LiveGames     []gamePayload `json:"live_games"`
}

type gamePayload struct {
	AwayTeam      string `json:"away_team"`
	HomeTeam      string `json:"home_team"`
	AwayScore     int    `json:"away_score"`
	HomeScore     int    `json:"home_score"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	TimeRemaining string `json:"time_remaining"`
}

type predictionsResponse struct {
	Predictions *predictionGroups `json:"predictions"`
}

type predictionGroups struct {
	TopScorers    []predictionPayload `json:"top_scorers"`
	TopAssists    []predictionPayload `json:"top_assists"`
	TopRebounders []predictionPayload `json:"top_rebounders"`
	Breakout      []predictionPayload `json:"breakout_players"`
}

type predictionPayload struct {
	PlayerName   string  `json:"PLAYER_NAME"`
	Team         string  `json:"TEAM"`
	Position     string  `json:"POSITION"`
	PredictedPPG float64 `json:"PREDICTED_PPG"`
	PredictedAPG float64 `json:"PREDICTED_APG"`
	PredictedRPG float64 `json:"PREDICTED_RPG"`
	PPGLast      float64 `json:"PPG_LAST"`
	APGLast      float64 `json:"APG_LAST"`
	RPGLast      float64 `json:"RPG_LAST"`
}
