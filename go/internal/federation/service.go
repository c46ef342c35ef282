// Package federation is the single entry point consumers use to read
// sports data. It routes each call across the configured providers in
// priority order, caches results per call signature, isolates provider
// failures, and merges rosters for the one mergeable operation.
package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/mcdev12/sportsfed/go/internal/providers"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// EventStore is an optional durable cache for past events. Past events are
// final, so the store is authoritative: a stored empty list means "no
// events on that date", not "unknown".
type EventStore interface {
	GetEvents(ctx context.Context, provider, league string, date time.Time) ([]models.Event, bool, error)
	PutEvents(ctx context.Context, provider, league string, date time.Time, events []models.Event) error
}

// Service federates all configured providers behind one provider-agnostic
// surface. It is safe for concurrent use; the cache is the only shared
// mutable state and concurrent identical misses collapse into a single
// upstream fetch.
type Service struct {
	providers []providers.Provider // ascending priority order
	cache     Cache
	ttl       TTLConfig
	merge     bool
	store     EventStore
	clock     clockwork.Clock
	group     singleflight.Group
}

// New builds a Service from an explicit configuration and the provider
// implementations it names. Providers disabled in the configuration are
// ignored; a configured name with no matching implementation is an error.
func New(cfg Config, available []providers.Provider, opts ...Option) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid federation config: %w", err)
	}

	byName := make(map[string]providers.Provider, len(available))
	for _, provider := range available {
		byName[provider.Name()] = provider
	}

	configs := make([]ProviderConfig, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		if pc.Enabled {
			configs = append(configs, pc)
		}
	}
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].Priority < configs[j].Priority
	})

	ordered := make([]providers.Provider, 0, len(configs))
	for _, pc := range configs {
		provider, ok := byName[pc.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, pc.Name)
		}
		ordered = append(ordered, provider)
	}

	s := &Service{
		providers: ordered,
		cache:     NewMemoryCache(),
		ttl:       cfg.TTL.withDefaults(),
		merge:     cfg.MergeLeagueTeams,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Providers returns the names of the enabled providers in fallback order.
func (s *Service) Providers() []string {
	names := make([]string, len(s.providers))
	for i, provider := range s.providers {
		names[i] = provider.Name()
	}
	return names
}

// SupportsLeague reports whether any enabled provider serves the league.
func (s *Service) SupportsLeague(league string) bool {
	for _, provider := range s.providers {
		if provider.SupportsLeague(league) {
			return true
		}
	}
	return false
}

// GetTeam resolves a provider-scoped team id, or nil if no provider knows
// it.
func (s *Service) GetTeam(ctx context.Context, teamID, league string, opts ...CallOption) (*models.Team, error) {
	key := MakeCacheKey("team", league, teamID)
	call := func(ctx context.Context, p providers.Provider) (*models.Team, bool, error) {
		team, err := p.GetTeam(ctx, teamID, league)
		return team, team != nil, err
	}
	return federate(ctx, s, "get_team", key, league, s.ttl.TeamInfo, call, opts)
}

// GetTeamSchedule returns a team's upcoming events within daysAhead days,
// sorted by start time ascending.
func (s *Service) GetTeamSchedule(ctx context.Context, teamID, league string, daysAhead int, opts ...CallOption) ([]models.Event, error) {
	key := MakeCacheKey("schedule", league, teamID, fmt.Sprintf("%d", daysAhead))
	call := func(ctx context.Context, p providers.Provider) ([]models.Event, bool, error) {
		events, err := p.GetTeamSchedule(ctx, teamID, league, daysAhead)
		return events, len(events) > 0, err
	}
	events, err := federate(ctx, s, "get_team_schedule", key, league, s.ttl.Schedule, call, opts)
	if events == nil {
		events = []models.Event{}
	}
	return events, err
}

// GetEvents returns all events for a league on one calendar date. Past
// dates consult the durable event store before any provider.
func (s *Service) GetEvents(ctx context.Context, league string, date time.Time, opts ...CallOption) ([]models.Event, error) {
	key := MakeCacheKey("events", league, date.Format("2006-01-02"))
	now := s.clock.Now()
	isPast := daysBetween(now, date) < 0

	call := func(ctx context.Context, p providers.Provider) ([]models.Event, bool, error) {
		if isPast && s.store != nil {
			events, ok, err := s.store.GetEvents(ctx, p.Name(), league, date)
			if err != nil {
				log.Warn().Err(err).Str("provider", p.Name()).Str("league", league).Msg("event store read failed")
			} else if ok {
				return events, true, nil
			}
		}

		events, err := p.GetEvents(ctx, league, date)
		if err != nil {
			return nil, false, err
		}

		if isPast && s.store != nil {
			if err := s.store.PutEvents(ctx, p.Name(), league, date, events); err != nil {
				log.Warn().Err(err).Str("provider", p.Name()).Str("league", league).Msg("event store write failed")
			}
		}
		return events, len(events) > 0, nil
	}

	events, err := federate(ctx, s, "get_events", key, league, s.ttl.EventsTTL(date, now), call, opts)
	if events == nil {
		events = []models.Event{}
	}
	return events, err
}

// GetEvent resolves a provider-scoped event id, used when a cached team
// schedule has gone stale (finished-game detail).
func (s *Service) GetEvent(ctx context.Context, eventID, league string, opts ...CallOption) (*models.Event, error) {
	key := MakeCacheKey("event", league, eventID)
	call := func(ctx context.Context, p providers.Provider) (*models.Event, bool, error) {
		event, err := p.GetEvent(ctx, eventID, league)
		return event, event != nil, err
	}
	return federate(ctx, s, "get_event", key, league, s.ttl.SingleEvent, call, opts)
}

// GetTeamStats returns standings data for a team, or nil when no provider
// tracks standings for the league.
func (s *Service) GetTeamStats(ctx context.Context, teamID, league string, opts ...CallOption) (*models.TeamStats, error) {
	key := MakeCacheKey("stats", league, teamID)
	call := func(ctx context.Context, p providers.Provider) (*models.TeamStats, bool, error) {
		stats, err := p.GetTeamStats(ctx, teamID, league)
		return stats, stats != nil, err
	}
	return federate(ctx, s, "get_team_stats", key, league, s.ttl.TeamStats, call, opts)
}

// GetLeagueTeams returns the team roster for a league. This is the one
// mergeable operation: with merging enabled, every supporting provider
// contributes and rosters are unioned by normalized (name, league), the
// higher-priority provider winning field by field.
func (s *Service) GetLeagueTeams(ctx context.Context, league string, opts ...CallOption) ([]models.Team, error) {
	key := MakeCacheKey("league_teams", league)

	if !s.merge {
		call := func(ctx context.Context, p providers.Provider) ([]models.Team, bool, error) {
			teams, err := p.GetLeagueTeams(ctx, league)
			return teams, len(teams) > 0, err
		}
		teams, err := federate(ctx, s, "get_league_teams", key, league, s.ttl.TeamInfo, call, opts)
		if teams == nil {
			teams = []models.Team{}
		}
		return teams, err
	}

	options := applyCallOptions(opts)
	if options.forceRefresh {
		s.cache.Delete(ctx, key)
	} else if cached, ok := cacheGet[[]models.Team](ctx, s.cache, key); ok {
		return cached, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetchMergedLeagueTeams(ctx, key, league)
	})
	if err != nil {
		return []models.Team{}, err
	}
	return value.([]models.Team), nil
}

func (s *Service) fetchMergedLeagueTeams(ctx context.Context, key, league string) ([]models.Team, error) {
	var groups [][]models.Team
	var failures []ProviderFailure
	attempted := 0

	for _, provider := range s.providers {
		if !provider.SupportsLeague(league) {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		attempted++

		teams, err := provider.GetLeagueTeams(ctx, league)
		if err != nil {
			log.Warn().Err(err).Str("provider", provider.Name()).Str("league", league).Msg("provider failed, continuing")
			failures = append(failures, ProviderFailure{Provider: provider.Name(), Err: err})
			continue
		}
		if len(teams) > 0 {
			groups = append(groups, teams)
		}
	}

	if len(groups) == 0 {
		if ctx.Err() != nil && attempted == 0 {
			return nil, ctx.Err()
		}
		if attempted > 0 && len(failures) == attempted && ctx.Err() == nil {
			return nil, &ExhaustedError{Operation: "get_league_teams", Failures: failures}
		}
		empty := []models.Team{}
		if ctx.Err() == nil {
			cachePut(ctx, s.cache, key, empty, s.ttl.EmptyResult)
		}
		return empty, nil
	}

	merged := mergeTeams(groups)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	cachePut(ctx, s.cache, key, merged, s.ttl.TeamInfo)
	return merged, nil
}

// GetTeamsByConference maps conference name to teams. Leagues without a
// conference structure yield an empty map.
func (s *Service) GetTeamsByConference(ctx context.Context, league string, opts ...CallOption) (map[string][]models.Team, error) {
	key := MakeCacheKey("conferences", league)
	call := func(ctx context.Context, p providers.Provider) (map[string][]models.Team, bool, error) {
		conferences, err := p.GetTeamsByConference(ctx, league)
		return conferences, len(conferences) > 0, err
	}
	conferences, err := federate(ctx, s, "get_teams_by_conference", key, league, s.ttl.TeamInfo, call, opts)
	if conferences == nil {
		conferences = map[string][]models.Team{}
	}
	return conferences, err
}

// SearchTeams fuzzy-matches team names across providers, best match
// first. League may be empty to search every supported league.
func (s *Service) SearchTeams(ctx context.Context, query, league string, opts ...CallOption) ([]models.Team, error) {
	key := MakeCacheKey("search", league, strings.ToLower(query))
	call := func(ctx context.Context, p providers.Provider) ([]models.Team, bool, error) {
		teams, err := p.SearchTeams(ctx, query, league)
		return teams, len(teams) > 0, err
	}
	teams, err := federate(ctx, s, "search_teams", key, league, s.ttl.Search, call, opts)
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, err
}

// CacheStats reports cache effectiveness for diagnostics endpoints.
func (s *Service) CacheStats(ctx context.Context) CacheStats {
	return s.cache.Stats(ctx)
}

// ClearCache drops every cached entry.
func (s *Service) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
}

type providerCall[T any] func(ctx context.Context, p providers.Provider) (T, bool, error)

// federate runs the shared routing algorithm: cache, then providers in
// priority order behind a single-flight group, caching the first usable
// result.
func federate[T any](ctx context.Context, s *Service, operation, key, league string, ttl time.Duration, call providerCall[T], opts []CallOption) (T, error) {
	var zero T

	options := applyCallOptions(opts)
	if options.forceRefresh {
		s.cache.Delete(ctx, key)
	} else if cached, ok := cacheGet[T](ctx, s.cache, key); ok {
		return cached, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		return dispatch(ctx, s, operation, key, league, ttl, call)
	})
	if err != nil {
		return zero, err
	}
	return value.(T), nil
}

// dispatch walks the provider order inside the single-flight boundary.
//
// Empty results keep falling through; they are only cached (briefly) once
// every provider has been consulted. A context that expires mid-fallback
// is an exhausted outcome, not an error, unless no provider was reached.
func dispatch[T any](ctx context.Context, s *Service, operation, key, league string, ttl time.Duration, call providerCall[T]) (T, error) {
	var zero T
	var failures []ProviderFailure
	attempted := 0

	for _, provider := range s.providers {
		if league != "" && !provider.SupportsLeague(league) {
			log.Debug().Str("provider", provider.Name()).Str("league", league).Str("op", operation).Msg("league unsupported, skipping")
			continue
		}
		if ctx.Err() != nil {
			break
		}
		attempted++

		value, found, err := call(ctx, provider)
		if err != nil {
			log.Warn().Err(err).Str("provider", provider.Name()).Str("op", operation).Msg("provider failed, continuing")
			failures = append(failures, ProviderFailure{Provider: provider.Name(), Err: err})
			continue
		}
		if !found {
			continue
		}

		cachePut(ctx, s.cache, key, value, ttl)
		return value, nil
	}

	if ctx.Err() != nil {
		if attempted == 0 {
			return zero, ctx.Err()
		}
		return zero, nil
	}
	if attempted > 0 && len(failures) == attempted {
		return zero, &ExhaustedError{Operation: operation, Failures: failures}
	}

	cachePut(ctx, s.cache, key, zero, s.ttl.EmptyResult)
	return zero, nil
}

func cacheGet[T any](ctx context.Context, cache Cache, key string) (T, bool) {
	var value T
	data, ok := cache.Get(ctx, key)
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		cache.Delete(ctx, key)
		return value, false
	}
	return value, true
}

func cachePut[T any](ctx context.Context, cache Cache, key string, value T, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	cache.Set(ctx, key, data, ttl)
}
