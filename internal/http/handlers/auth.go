package handlers

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Login signs in against the backend and persists the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required", h.logger)
		return
	}

	res := h.auth.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, res, h.logger)
}

// Signup creates an account on the backend.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required", h.logger)
		return
	}

	res := h.auth.Signup(r.Context(), strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName), strings.TrimSpace(req.Email), req.Password)
	status := http.StatusCreated
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res, h.logger)
}

// Logout clears the stored session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.auth.Logout(r.Context()); err != nil {
		logging.Error(logger, "session clear failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to clear session", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"}, logger)
}

// Session verifies the stored token with the backend.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.auth.Verify(r.Context()), h.logger)
}
