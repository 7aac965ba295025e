// Package insights holds the read-only views that sit beside the statistics
// screen: trending players, the game schedule, and model predictions.
package insights

import "strings"

// Trend directions carried by TrendingPlayer.Trend.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendSteady = "steady"
)

// Placeholders shown when the backend leaves a game field blank.
const (
	UnknownTeam       = "TBD"
	UnknownTime       = "TBD"
	DefaultStatus     = "Scheduled"
	DefaultLivePeriod = "Q4"
)

// TrendingPlayer is one entry of the hot players list.
type TrendingPlayer struct {
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	PPG   float64 `json:"ppg"`
	APG   float64 `json:"apg"`
	RPG   float64 `json:"rpg"`
	Trend string  `json:"trend"`
}

// TrendingPlayers is the hot players list plus the backend's note on where
// it came from.
type TrendingPlayers struct {
	Players []TrendingPlayer `json:"players"`
	Source  string           `json:"source,omitempty"`
	Message string           `json:"message,omitempty"`
}

// Game is a scheduled or in-progress matchup.
type Game struct {
	AwayTeam      string `json:"away_team"`
	HomeTeam      string `json:"home_team"`
	AwayScore     int    `json:"away_score"`
	HomeScore     int    `json:"home_score"`
	Time          string `json:"time,omitempty"`
	Status        string `json:"status,omitempty"`
	TimeRemaining string `json:"time_remaining,omitempty"`
}

// Games splits the schedule into games not yet started and games in progress.
type Games struct {
	Upcoming []Game `json:"upcoming"`
	Live     []Game `json:"live"`
}

// Prediction is a model forecast for one player next to last season's line.
type Prediction struct {
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	PredictedPPG float64 `json:"predicted_ppg"`
	PredictedAPG float64 `json:"predicted_apg"`
	PredictedRPG float64 `json:"predicted_rpg"`
	PPGLast      float64 `json:"ppg_last"`
	APGLast      float64 `json:"apg_last"`
	RPGLast      float64 `json:"rpg_last"`
}

// Predictions groups forecasts by leaderboard.
type Predictions struct {
	TopScorers    []Prediction `json:"top_scorers"`
	TopAssists    []Prediction `json:"top_assists"`
	TopRebounders []Prediction `json:"top_rebounders"`
	Breakout      []Prediction `json:"breakout_players"`
}

// NormalizeTrend maps a backend trend label onto up, down or steady.
func NormalizeTrend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case TrendUp:
		return TrendUp
	case TrendDown:
		return TrendDown
	default:
		return TrendSteady
	}
}

// UpcomingDefaults fills blank fields of a game that has not started.
func UpcomingDefaults(g Game) Game {
	g.AwayTeam = orDefault(g.AwayTeam, UnknownTeam)
	g.HomeTeam = orDefault(g.HomeTeam, UnknownTeam)
	g.Time = orDefault(g.Time, UnknownTime)
	g.Status = orDefault(g.Status, DefaultStatus)
	return g
}

// LiveDefaults fills blank fields of a game in progress.
func LiveDefaults(g Game) Game {
	g.AwayTeam = orDefault(g.AwayTeam, UnknownTeam)
	g.HomeTeam = orDefault(g.HomeTeam, UnknownTeam)
	g.TimeRemaining = orDefault(g.TimeRemaining, DefaultLivePeriod)
	return g
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
