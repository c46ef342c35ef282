package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterConfig carries the HTTP-surface settings the router needs.
type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP routing tree around a handler.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/leagues/{league}", func(r chi.Router) {
			r.Get("/events", h.GetEvents)
			r.Get("/events/{eventID}", h.GetEvent)
			r.Get("/teams", h.GetLeagueTeams)
			r.Get("/teams/{teamID}", h.GetTeam)
			r.Get("/teams/{teamID}/schedule", h.GetTeamSchedule)
			r.Get("/teams/{teamID}/stats", h.GetTeamStats)
			r.Get("/conferences", h.GetConferences)
		})

		r.Get("/teams/search", h.SearchTeams)

		r.Get("/cache/stats", h.GetCacheStats)
		r.Post("/cache/clear", h.ClearCache)
	})

	return r
}
