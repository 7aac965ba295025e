package viewmodel

import "github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"

// Membership answers whether a player is favorited.
type Membership interface {
	Contains(id players.PlayerID) bool
}

// Row is one rendered line of the statistics screen.
type Row struct {
	Player   players.Player `json:"player"`
	Favorite bool           `json:"favorite"`
}

// BuildRows sorts the fetched page per state and flags favorites.
func BuildRows(page []players.Player, state ViewState, favorites Membership) []Row {
	sorted := Sort(page, state.SortKey, state.Direction)
	rows := make([]Row, len(sorted))
	for i, p := range sorted {
		rows[i] = Row{
			Player:   p,
			Favorite: favorites != nil && favorites.Contains(p.ID),
		}
	}
	return rows
}
