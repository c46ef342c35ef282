// Package api exposes the federation service over HTTP. All endpoints are
// read-only views of provider data except the cache controls.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/sportsfed/go/internal/federation"
	"github.com/rs/zerolog/log"
)

const defaultScheduleDays = 14

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	svc *federation.Service
}

// NewHandler creates a new handler backed by the federation service.
func NewHandler(svc *federation.Service) *Handler {
	return &Handler{svc: svc}
}

// HealthCheck reports liveness and the configured provider order.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "sportsfed",
		"providers": h.svc.Providers(),
		"timestamp": time.Now().UTC(),
	})
}

// GetEvents returns all events for a league on one date.
// Query params: date (YYYY-MM-DD, default today), refresh
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	if !h.supported(w, league) {
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD", err)
			return
		}
		date = parsed
	}

	events, err := h.svc.GetEvents(r.Context(), league, date, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve events", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
		"league": league,
		"date":   date.Format("2006-01-02"),
	})
}

// GetEvent returns one event by provider-scoped id.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	eventID := chi.URLParam(r, "eventID")
	if !h.supported(w, league) {
		return
	}

	event, err := h.svc.GetEvent(r.Context(), eventID, league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve event", err)
		return
	}
	if event == nil {
		respondError(w, http.StatusNotFound, "event not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// GetLeagueTeams returns the full roster of teams in a league.
func (h *Handler) GetLeagueTeams(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	if !h.supported(w, league) {
		return
	}

	teams, err := h.svc.GetLeagueTeams(r.Context(), league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"teams":  teams,
		"count":  len(teams),
		"league": league,
	})
}

// GetTeam returns one team by provider-scoped id.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	teamID := chi.URLParam(r, "teamID")
	if !h.supported(w, league) {
		return
	}

	team, err := h.svc.GetTeam(r.Context(), teamID, league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve team", err)
		return
	}
	if team == nil {
		respondError(w, http.StatusNotFound, "team not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

// GetTeamSchedule returns a team's upcoming events.
// Query params: days (default 14), refresh
func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	teamID := chi.URLParam(r, "teamID")
	if !h.supported(w, league) {
		return
	}

	days := parseIntParam(r, "days", defaultScheduleDays)
	if days < 1 {
		respondError(w, http.StatusBadRequest, "days must be positive", nil)
		return
	}

	events, err := h.svc.GetTeamSchedule(r.Context(), teamID, league, days, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
		"league": league,
		"team":   teamID,
		"days":   days,
	})
}

// GetTeamStats returns standings data for one team.
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	teamID := chi.URLParam(r, "teamID")
	if !h.supported(w, league) {
		return
	}

	stats, err := h.svc.GetTeamStats(r.Context(), teamID, league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve team stats", err)
		return
	}
	if stats == nil {
		respondError(w, http.StatusNotFound, "no standings for team", nil)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetConferences returns teams grouped by conference.
func (h *Handler) GetConferences(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	if !h.supported(w, league) {
		return
	}

	conferences, err := h.svc.GetTeamsByConference(r.Context(), league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "failed to retrieve conferences", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"conferences": conferences,
		"count":       len(conferences),
		"league":      league,
	})
}

// SearchTeams fuzzy-matches team names.
// Query params: q (required), league (optional), refresh
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "q is required", nil)
		return
	}
	league := r.URL.Query().Get("league")
	if league != "" && !h.supported(w, league) {
		return
	}

	teams, err := h.svc.SearchTeams(r.Context(), query, league, refreshOpts(r)...)
	if err != nil {
		respondFederationError(w, "search failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"teams": teams,
		"count": len(teams),
		"query": query,
	})
}

// GetCacheStats reports cache hit/miss counters and entry counts.
func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.CacheStats(r.Context()))
}

// ClearCache drops every cached entry.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCache(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"cleared": true})
}

// supported rejects leagues no enabled provider serves. Returns false if
// the response has been written.
func (h *Handler) supported(w http.ResponseWriter, league string) bool {
	if !h.svc.SupportsLeague(league) {
		respondError(w, http.StatusNotFound, "unsupported league", nil)
		return false
	}
	return true
}

// refreshOpts translates the refresh query param into call options.
func refreshOpts(r *http.Request) []federation.CallOption {
	if r.URL.Query().Get("refresh") == "true" {
		return []federation.CallOption{federation.ForceRefresh()}
	}
	return nil
}

func parseIntParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// respondFederationError maps routing failures to status codes: every
// provider failing is an upstream problem, anything else is ours.
func respondFederationError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, federation.ErrAllProvidersFailed) {
		respondError(w, http.StatusBadGateway, message, err)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusGatewayTimeout, message, err)
		return
	}
	respondError(w, http.StatusInternalServerError, message, err)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode error response")
	}
}
