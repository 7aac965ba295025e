package handlers

import (
	"errors"
	"net/http"

	"github.com/preston-bernstein/nba-stats-viewer/internal/app/board"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

// Trending fetches and returns the trending view. Failures render inside
// the view, so the status is always 200.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	writeJSON(w, http.StatusOK, h.board.RefreshTrending(r.Context()), logger)
}

// Predictions fetches and returns the predictions view.
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	writeJSON(w, http.StatusOK, h.board.RefreshPredictions(r.Context()), logger)
}

// PlayerDetail returns one player summary from the backend.
func (h *Handler) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	player, err := h.board.Player(r.Context(), id)
	switch {
	case errors.Is(err, board.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, "player not found", logger)
		return
	case err != nil:
		logging.Warn(logger, "player detail failed", logging.FieldPlayerID, string(id), "error", err)
		writeError(w, r, http.StatusBadGateway, "failed to fetch player", logger)
		return
	}
	writeJSON(w, http.StatusOK, player, logger)
}
