// Package viewmodel holds the non-visual logic behind the player statistics
// screen: view state transitions, local sorting of a fetched page, favorite
// annotation and the query sent to the stats backend. Everything here is a
// pure function of its inputs.
package viewmodel

import (
	"strings"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

// SortKey selects the column a page is ordered by.
type SortKey string

const (
	SortName     SortKey = "name"
	SortTeam     SortKey = "team"
	SortPosition SortKey = "position"
	SortPPG      SortKey = SortKey(players.StatPPG)
	SortAPG      SortKey = SortKey(players.StatAPG)
	SortRPG      SortKey = SortKey(players.StatRPG)
	SortSPG      SortKey = SortKey(players.StatSPG)
	SortBPG      SortKey = SortKey(players.StatBPG)
	SortFGPct    SortKey = SortKey(players.StatFGPct)
	SortFG3Pct   SortKey = SortKey(players.StatFG3Pct)
	SortFTPct    SortKey = SortKey(players.StatFTPct)
	SortGames    SortKey = SortKey(players.StatGames)
)

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DisplayMode switches between the tabular and card layouts.
type DisplayMode string

const (
	DisplayTable DisplayMode = "table"
	DisplayCards DisplayMode = "cards"
)

// IsText reports whether the key orders by a display string rather than a stat.
func (k SortKey) IsText() bool {
	return k == SortName || k == SortTeam || k == SortPosition
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(raw string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if key.IsText() {
		return key, true
	}
	for _, code := range players.StatCodes {
		if string(key) == code {
			return key, true
		}
	}
	return SortName, false
}

// ParseDirection validates a user-supplied direction.
func ParseDirection(raw string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	default:
		return Asc, false
	}
}

// ParseDisplayMode validates a user-supplied display mode.
func ParseDisplayMode(raw string) (DisplayMode, bool) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(raw))) {
	case DisplayTable:
		return DisplayTable, true
	case DisplayCards:
		return DisplayCards, true
	default:
		return DisplayTable, false
	}
}

// ViewState is everything the statistics screen remembers between
// interactions. It lives for one screen session and is never persisted.
type ViewState struct {
	Search     string      `json:"search"`
	Team       string      `json:"team"`
	Position   string      `json:"position"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	SortKey    SortKey     `json:"sortKey"`
	Direction  Direction   `json:"direction"`
	Display    DisplayMode `json:"display"`
}

// NewViewState returns the state of a freshly mounted screen.
func NewViewState() ViewState {
	return ViewState{
		Page:       1,
		TotalPages: 1,
		SortKey:    SortName,
		Direction:  Asc,
		Display:    DisplayTable,
	}
}

// WithSearch sets the search term and returns to the first page.
func (s ViewState) WithSearch(term string) ViewState {
	s.Search = term
	s.Page = 1
	return s
}

// WithTeam sets the team filter and returns to the first page.
func (s ViewState) WithTeam(team string) ViewState {
	s.Team = team
	s.Page = 1
	return s
}

// WithPosition sets the position filter and returns to the first page.
func (s ViewState) WithPosition(position string) ViewState {
	s.Position = position
	s.Page = 1
	return s
}

// ClearFilters drops search, team and position and returns to the first page.
func (s ViewState) ClearFilters() ViewState {
	s.Search = ""
	s.Team = ""
	s.Position = ""
	s.Page = 1
	return s
}

// WithPage moves to page n, clamped to the known page range.
func (s ViewState) WithPage(n int) ViewState {
	last := s.TotalPages
	if last < 1 {
		last = 1
	}
	switch {
	case n < 1:
		n = 1
	case n > last:
		n = last
	}
	s.Page = n
	return s
}

// WithTotalPages records the server-reported page count.
func (s ViewState) WithTotalPages(total int) ViewState {
	if total < 1 {
		total = 1
	}
	s.TotalPages = total
	return s
}

// WithSort selects a column and direction. The page is left untouched.
func (s ViewState) WithSort(key SortKey, dir Direction) ViewState {
	if parsed, ok := ParseSortKey(string(key)); ok {
		s.SortKey = parsed
	} else {
		s.SortKey = SortName
	}
	if parsed, ok := ParseDirection(string(dir)); ok {
		s.Direction = parsed
	} else {
		s.Direction = Asc
	}
	return s
}

// ToggleSort mirrors a click on a column header: the active column flips
// direction, any other column becomes active in ascending order.
func (s ViewState) ToggleSort(key SortKey) ViewState {
	if key == s.SortKey {
		if s.Direction == Asc {
			return s.WithSort(key, Desc)
		}
		return s.WithSort(key, Asc)
	}
	return s.WithSort(key, Asc)
}

// WithDisplay switches layout.
func (s ViewState) WithDisplay(mode DisplayMode) ViewState {
	if parsed, ok := ParseDisplayMode(string(mode)); ok {
		s.Display = parsed
	}
	return s
}
