package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-stats-viewer/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router with CORS and request logging.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Chi(logger, recorder))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/", h.StatsView)
		r.Post("/filters", h.SetFilters)
		r.Post("/filters/clear", h.ClearFilters)
		r.Post("/page", h.GoToPage)
		r.Post("/sort", h.SetSort)
		r.Post("/display", h.SetDisplay)
		r.Post("/retry", h.Retry)
	})

	r.Route("/trending", func(r chi.Router) {
		r.Get("/", h.Trending)
		r.Post("/retry", h.Trending)
	})

	r.Route("/predictions", func(r chi.Router) {
		r.Get("/", h.Predictions)
		r.Post("/retry", h.Predictions)
	})

	r.Get("/players/{id}", h.PlayerDetail)

	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", h.ListFavorites)
		r.Post("/{id}/toggle", h.ToggleFavorite)
		r.Delete("/{id}", h.RemoveFavorite)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
		r.Get("/session", h.Session)
	})

	return r
}
