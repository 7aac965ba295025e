package testutil

import "github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"

// SamplePlayer returns a minimal player fixture with the provided id, name and points per game.
func SamplePlayer(id, name string, ppg float64) players.Player {
	return players.Player{
		ID:       players.PlayerID(id),
		Name:     name,
		Team:     "GSW",
		Position: "G",
		Stats:    map[string]float64{players.StatPPG: ppg},
	}
}

// SamplePage builds a single-page result holding the given players.
func SamplePage(list ...players.Player) players.Page {
	if list == nil {
		list = []players.Player{}
	}
	return players.Page{Players: list, TotalPages: 1, Total: len(list)}
}
