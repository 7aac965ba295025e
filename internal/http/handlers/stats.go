package handlers

import (
	"net/http"

	"github.com/preston-bernstein/nba-stats-viewer/internal/viewmodel"
)

type filtersRequest struct {
	Search   *string `json:"search"`
	Team     *string `json:"team"`
	Position *string `json:"position"`
}

type pageRequest struct {
	Page *int `json:"page"`
}

type sortRequest struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type displayRequest struct {
	Mode string `json:"mode"`
}

// StatsView returns the current screen without fetching.
func (h *Handler) StatsView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.screen.View(), h.logger)
}

// SetFilters applies search, team and position changes and refetches.
func (h *Handler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.screen.SetFilters(r.Context(), req.Search, req.Team, req.Position), h.logger)
}

// ClearFilters drops every filter and refetches.
func (h *Handler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.screen.ClearFilters(r.Context()), h.logger)
}

// GoToPage moves to a page, clamped to the known range.
func (h *Handler) GoToPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := decodeBody(r, &req); err != nil || req.Page == nil {
		writeError(w, r, http.StatusBadRequest, "page is required", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.screen.GoToPage(r.Context(), *req.Page), h.logger)
}

// SetSort selects a sort column. Without a direction it behaves like a
// header click and toggles.
func (h *Handler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	key, ok := viewmodel.ParseSortKey(req.Key)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown sort key", h.logger)
		return
	}
	if req.Direction == "" {
		writeJSON(w, http.StatusOK, h.screen.ToggleSort(key), h.logger)
		return
	}
	dir, ok := viewmodel.ParseDirection(req.Direction)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "direction must be asc or desc", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.screen.SetSort(key, dir), h.logger)
}

// SetDisplay switches between table and cards.
func (h *Handler) SetDisplay(w http.ResponseWriter, r *http.Request) {
	var req displayRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	mode, ok := viewmodel.ParseDisplayMode(req.Mode)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "mode must be table or cards", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.screen.SetDisplayMode(mode), h.logger)
}

// Retry refetches the current page.
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.screen.Retry(r.Context()), h.logger)
}
