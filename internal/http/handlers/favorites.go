package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-stats-viewer/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

type favoritesResponse struct {
	Favorites []players.Player `json:"favorites"`
}

type toggleResponse struct {
	Favorite bool       `json:"favorite"`
	View     stats.Page `json:"view"`
}

// ListFavorites returns the stored favorite snapshots.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, favoritesResponse{Favorites: h.screen.Favorites(r.Context())}, h.logger)
}

// ToggleFavorite favorites or unfavorites a player on the current page.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	added, view, err := h.screen.ToggleFavorite(r.Context(), id)
	if errors.Is(err, stats.ErrPlayerNotOnPage) {
		logging.Debug(logger, "toggle for player off page", logging.FieldPlayerID, string(id))
		writeError(w, r, http.StatusNotFound, "player not on current page", logger)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{Favorite: added, View: view}, logger)
}

// RemoveFavorite drops a player from favorites by id.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	h.screen.RemoveFavorite(r.Context(), id)
	writeJSON(w, http.StatusOK, favoritesResponse{Favorites: h.screen.Favorites(r.Context())}, logger)
}

func playerIDParam(r *http.Request) (players.PlayerID, bool) {
	raw, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t/") {
		return "", false
	}
	return players.PlayerID(raw), true
}
