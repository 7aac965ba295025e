package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-viewer/internal/app/board"
	"github.com/preston-bernstein/nba-stats-viewer/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-viewer/internal/auth"
)

// Authenticator is the subset of the auth client the HTTP surface needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) auth.Result
	Signup(ctx context.Context, firstName, lastName, email, password string) auth.Result
	Logout(ctx context.Context) error
	Verify(ctx context.Context) auth.Verification
}

// Handler wires HTTP routes to the statistics screen, the insight board
// and the auth client.
type Handler struct {
	screen *stats.Screen
	board  *board.Board
	auth   Authenticator
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(screen *stats.Screen, insightBoard *board.Board, authenticator Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		screen: screen,
		board:  insightBoard,
		auth:   authenticator,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
