package fixture

import "github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"

type rosterEntry struct {
	id       string
	name     string
	team     string
	position string
	age      float64
	height   float64
	weight   float64
	ppg      float64
	apg      float64
	rpg      float64
	spg      float64
	bpg      float64
	fgPct    float64
	fg3Pct   float64
	ftPct    float64
	games    float64
	ppgTrend float64
	consist  float64
}

var rosterEntries = []rosterEntry{
	{"2544", "LeBron James", "LAL", "F", 40, 81, 250, 24.4, 8.2, 7.8, 1.0, 0.6, 51.3, 37.6, 78.2, 70, -1.3, 0.72},
	{"203999", "Nikola Jokic", "DEN", "C", 30, 83, 284, 29.6, 10.2, 12.7, 1.8, 0.6, 57.6, 41.7, 80.0, 70, 3.2, 0.81},
	{"1628983", "Shai Gilgeous-Alexander", "OKC", "G", 26, 78, 195, 32.7, 6.4, 5.0, 1.7, 1.0, 51.9, 37.5, 89.8, 76, 2.6, 0.84},
	{"1629029", "Luka Doncic", "LAL", "G", 26, 79, 230, 28.2, 7.7, 8.2, 1.8, 0.4, 45.0, 36.8, 78.2, 50, -5.7, 0.63},
	{"201939", "Stephen Curry", "GSW", "G", 37, 74, 185, 24.5, 6.0, 4.4, 1.1, 0.4, 44.8, 39.7, 93.3, 70, -2.2, 0.70},
	{"1628369", "Jayson Tatum", "BOS", "F", 27, 80, 210, 26.8, 6.0, 8.7, 1.1, 0.5, 45.2, 34.3, 81.4, 72, -0.1, 0.77},
	{"1627759", "Jaylen Brown", "BOS", "G", 28, 78, 223, 22.2, 4.5, 5.8, 1.2, 0.3, 46.3, 32.4, 70.7, 63, -0.8, 0.71},
	{"1641705", "Victor Wembanyama", "SAS", "C", 21, 88, 235, 24.3, 3.7, 11.0, 1.1, 3.8, 47.6, 35.2, 83.6, 46, 2.9, 0.66},
	{"1630162", "Anthony Edwards", "MIN", "G", 23, 76, 225, 27.6, 4.5, 5.7, 1.2, 0.6, 44.7, 39.5, 83.7, 79, 1.7, 0.75},
	{"203507", "Giannis Antetokounmpo", "MIL", "F", 30, 83, 243, 30.4, 6.5, 11.9, 0.9, 1.2, 60.1, 22.2, 61.7, 67, -0.2, 0.80},
	{"1628378", "Donovan Mitchell", "CLE", "G", 28, 73, 215, 24.0, 5.0, 4.5, 1.3, 0.2, 44.3, 36.8, 81.5, 71, -2.6, 0.73},
	{"1629027", "Trae Young", "ATL", "G", 26, 73, 164, 24.2, 11.6, 3.1, 1.2, 0.2, 41.1, 34.0, 87.0, 76, -1.6, 0.68},
}

func defaultRoster() []players.Player {
	roster := make([]players.Player, 0, len(rosterEntries))
	for _, e := range rosterEntries {
		roster = append(roster, players.Player{
			ID:       players.PlayerID(e.id),
			Name:     e.name,
			Team:     e.team,
			Position: e.position,
			Age:      e.age,
			Height:   e.height,
			Weight:   e.weight,
			Stats: map[string]float64{
				"ppg_last":     e.ppg,
				"apg_last":     e.apg,
				"rpg_last":     e.rpg,
				"spg_last":     e.spg,
				"bpg_last":     e.bpg,
				"fg_pct_last":  e.fgPct,
				"fg3_pct_last": e.fg3Pct,
				"ft_pct_last":  e.ftPct,
				"games_played": e.games,
			},
			Trends: map[string]float64{
				players.TrendPPG:         e.ppgTrend,
				players.TrendConsistency: e.consist,
			},
		})
	}
	return roster
}
