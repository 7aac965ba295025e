// Package stats drives one statistics screen session: it owns the view
// state, fetches pages from the stats provider, and renders rows with
// favorite flags.
package stats

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/favorites"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/viewmodel"
)

// FetchErrorMessage is shown in place of the list when a page fetch fails.
const FetchErrorMessage = "Failed to fetch players"

// ErrPlayerNotOnPage is returned when a favorite toggle names a player that
// is not part of the currently displayed page.
var ErrPlayerNotOnPage = errors.New("player not on current page")

// Page is the rendered screen.
type Page struct {
	State     viewmodel.ViewState `json:"state"`
	Rows      []viewmodel.Row     `json:"rows"`
	Teams     []string            `json:"teams"`
	Positions []string            `json:"positions"`
	Total     int                 `json:"total"`
	Error     string              `json:"error,omitempty"`
}

// Screen serializes interactions with one statistics screen.
type Screen struct {
	provider  providers.StatsProvider
	favorites *favorites.Store
	metrics   *metrics.Recorder
	logger    *slog.Logger
	pageSize  int

	mu        sync.Mutex
	state     viewmodel.ViewState
	players   []players.Player
	total     int
	teams     []string
	positions []string
	favSet    favorites.Set
	errMsg    string
	seq       uint64
}

// NewScreen constructs a Screen. pageSize <= 0 selects viewmodel.DefaultPageSize.
func NewScreen(provider providers.StatsProvider, favs *favorites.Store, recorder *metrics.Recorder, logger *slog.Logger, pageSize int) *Screen {
	if pageSize <= 0 {
		pageSize = viewmodel.DefaultPageSize
	}
	return &Screen{
		provider:  provider,
		favorites: favs,
		metrics:   recorder,
		logger:    logger,
		pageSize:  pageSize,
		state:     viewmodel.NewViewState(),
		players:   []players.Player{},
		teams:     []string{},
		positions: []string{},
		favSet:    favorites.Set{},
	}
}

// Mount loads filter options and favorites, then fetches the first page.
// Option failures leave the corresponding list empty.
func (s *Screen) Mount(ctx context.Context) Page {
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "failed to fetch teams", "error", err)
		teams = []string{}
	}
	positions, err := s.provider.FetchPositions(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "failed to fetch positions", "error", err)
		positions = []string{}
	}
	favSet := s.favorites.Load(ctx)

	s.mu.Lock()
	s.teams = nonNil(teams)
	s.positions = nonNil(positions)
	s.favSet = favSet
	s.mu.Unlock()

	return s.refresh(ctx)
}

// SetSearch changes the search term.
func (s *Screen) SetSearch(ctx context.Context, term string) Page {
	return s.transition(ctx, func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithSearch(term) })
}

// SetTeam changes the team filter.
func (s *Screen) SetTeam(ctx context.Context, team string) Page {
	return s.transition(ctx, func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithTeam(team) })
}

// SetPosition changes the position filter.
func (s *Screen) SetPosition(ctx context.Context, position string) Page {
	return s.transition(ctx, func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithPosition(position) })
}

// SetFilters applies several filter changes as one interaction. Nil fields are left untouched.
func (s *Screen) SetFilters(ctx context.Context, search, team, position *string) Page {
	return s.transition(ctx, func(st viewmodel.ViewState) viewmodel.ViewState {
		if search != nil {
			st = st.WithSearch(*search)
		}
		if team != nil {
			st = st.WithTeam(*team)
		}
		if position != nil {
			st = st.WithPosition(*position)
		}
		return st
	})
}

// ClearFilters drops every filter.
func (s *Screen) ClearFilters(ctx context.Context) Page {
	return s.transition(ctx, viewmodel.ViewState.ClearFilters)
}

// GoToPage moves to page n, clamped to the known range.
func (s *Screen) GoToPage(ctx context.Context, n int) Page {
	return s.transition(ctx, func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithPage(n) })
}

// SetSort selects a column and direction. It never fetches.
func (s *Screen) SetSort(key viewmodel.SortKey, dir viewmodel.Direction) Page {
	return s.local(func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithSort(key, dir) })
}

// ToggleSort mirrors a column header click. It never fetches.
func (s *Screen) ToggleSort(key viewmodel.SortKey) Page {
	return s.local(func(st viewmodel.ViewState) viewmodel.ViewState { return st.ToggleSort(key) })
}

// SetDisplayMode switches between table and cards. It never fetches.
func (s *Screen) SetDisplayMode(mode viewmodel.DisplayMode) Page {
	return s.local(func(st viewmodel.ViewState) viewmodel.ViewState { return st.WithDisplay(mode) })
}

// Retry refetches the current page.
func (s *Screen) Retry(ctx context.Context) Page {
	return s.refresh(ctx)
}

// ToggleFavorite favorites or unfavorites a player shown on the current
// page and reports the resulting direction. A failed write is logged and
// the favorite flags are reloaded from storage; the only error returned is
// ErrPlayerNotOnPage.
func (s *Screen) ToggleFavorite(ctx context.Context, id players.PlayerID) (bool, Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.findLocked(id)
	if !ok {
		return false, s.viewLocked(), ErrPlayerNotOnPage
	}
	added, err := s.favorites.Toggle(ctx, player)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "favorite toggle not persisted",
			logging.FieldPlayerID, string(id), "error", err)
	} else {
		s.metrics.RecordFavoriteToggle(added)
	}
	s.favSet = s.favorites.Load(ctx)
	return added, s.viewLocked(), nil
}

// RemoveFavorite drops a player from favorites by id. Storage failures are
// logged and leave the stored list as it was.
func (s *Screen) RemoveFavorite(ctx context.Context, id players.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasFavorite := s.favSet.Contains(id)
	if err := s.favorites.Remove(ctx, id); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "favorite removal not persisted",
			logging.FieldPlayerID, string(id), "error", err)
	} else if wasFavorite {
		s.metrics.RecordFavoriteToggle(false)
	}
	s.favSet = s.favorites.Load(ctx)
}

// Favorites returns the stored favorite snapshots.
func (s *Screen) Favorites(ctx context.Context) []players.Player {
	return s.favorites.List(ctx)
}

// View renders the current screen without fetching.
func (s *Screen) View() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Screen) transition(ctx context.Context, update func(viewmodel.ViewState) viewmodel.ViewState) Page {
	s.mu.Lock()
	prev := s.state
	s.state = update(prev)
	if !viewmodel.NeedsFetch(prev, s.state, s.pageSize) {
		defer s.mu.Unlock()
		return s.viewLocked()
	}
	s.mu.Unlock()
	return s.refresh(ctx)
}

func (s *Screen) local(update func(viewmodel.ViewState) viewmodel.ViewState) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = update(s.state)
	return s.viewLocked()
}

// refresh fetches the page described by the current state. The lock is not
// held during the fetch; a response whose sequence number has been
// overtaken by a later fetch is dropped.
func (s *Screen) refresh(ctx context.Context) Page {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	query := viewmodel.QueryParams(s.state, s.pageSize)
	s.mu.Unlock()

	page, err := s.provider.FetchPlayers(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	logger := logging.FromContext(ctx, s.logger)

	if seq != s.seq {
		logging.Debug(logger, "dropping superseded players response", logging.FieldPage, query.Get("page"))
		return s.viewLocked()
	}

	if err != nil {
		logging.Error(logger, "players fetch failed", err, logging.FieldPage, query.Get("page"))
		s.players = []players.Player{}
		s.total = 0
		s.errMsg = FetchErrorMessage
		return s.viewLocked()
	}

	s.players = nonNilPlayers(page.Players)
	s.total = page.Total
	s.state = s.state.WithTotalPages(page.TotalPages)
	s.errMsg = ""
	return s.viewLocked()
}

func (s *Screen) viewLocked() Page {
	view := Page{
		State:     s.state,
		Teams:     copyStrings(s.teams),
		Positions: copyStrings(s.positions),
		Total:     s.total,
		Error:     s.errMsg,
		Rows:      []viewmodel.Row{},
	}
	if s.errMsg == "" {
		view.Rows = viewmodel.BuildRows(s.players, s.state, s.favSet)
	}
	return view
}

func (s *Screen) findLocked(id players.PlayerID) (players.Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return players.Player{}, false
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilPlayers(list []players.Player) []players.Player {
	if list == nil {
		return []players.Player{}
	}
	return list
}
