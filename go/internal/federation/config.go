package federation

import (
	"fmt"
	"sort"
	"time"

	"github.com/mcdev12/sportsfed/go/clients"
)

// ProviderConfig enables one provider and places it in the fallback order.
// Lower priority values are tried first.
type ProviderConfig struct {
	Name     string `yaml:"name" json:"name"`
	Priority int    `yaml:"priority" json:"priority"`
	Enabled  bool   `yaml:"enabled" json:"enabled"`
}

// TTLConfig sets the cache lifetime per operation class. The zero value of
// any field falls back to the matching default.
type TTLConfig struct {
	TeamInfo    time.Duration `yaml:"team_info" json:"team_info"`
	TeamStats   time.Duration `yaml:"team_stats" json:"team_stats"`
	Schedule    time.Duration `yaml:"schedule" json:"schedule"`
	Events      time.Duration `yaml:"events" json:"events"`
	SingleEvent time.Duration `yaml:"single_event" json:"single_event"`
	Search      time.Duration `yaml:"search" json:"search"`
	// EmptyResult caches an exhausted "found nothing" outcome briefly so
	// repeated misses do not hammer rate-limited providers.
	EmptyResult time.Duration `yaml:"empty_result" json:"empty_result"`
}

// Cache TTL defaults, tuned for EPG regeneration patterns (hourly to 24h).
const (
	DefaultTTLTeamInfo    = 24 * time.Hour   // static team data
	DefaultTTLTeamStats   = 4 * time.Hour    // standings change infrequently
	DefaultTTLSchedule    = 8 * time.Hour    // team schedules rarely change
	DefaultTTLEvents      = 8 * time.Hour    // league events list
	DefaultTTLSingleEvent = 30 * time.Minute // scores on one event
	DefaultTTLSearch      = time.Hour
	DefaultTTLEmptyResult = time.Minute
)

// DefaultTTLConfig returns the default per-operation TTLs.
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		TeamInfo:    DefaultTTLTeamInfo,
		TeamStats:   DefaultTTLTeamStats,
		Schedule:    DefaultTTLSchedule,
		Events:      DefaultTTLEvents,
		SingleEvent: DefaultTTLSingleEvent,
		Search:      DefaultTTLSearch,
		EmptyResult: DefaultTTLEmptyResult,
	}
}

func (c TTLConfig) withDefaults() TTLConfig {
	defaults := DefaultTTLConfig()
	if c.TeamInfo <= 0 {
		c.TeamInfo = defaults.TeamInfo
	}
	if c.TeamStats <= 0 {
		c.TeamStats = defaults.TeamStats
	}
	if c.Schedule <= 0 {
		c.Schedule = defaults.Schedule
	}
	if c.Events <= 0 {
		c.Events = defaults.Events
	}
	if c.SingleEvent <= 0 {
		c.SingleEvent = defaults.SingleEvent
	}
	if c.Search <= 0 {
		c.Search = defaults.Search
	}
	if c.EmptyResult <= 0 {
		c.EmptyResult = defaults.EmptyResult
	}
	return c
}

// EventsTTL returns the cache lifetime for a league/date events query.
//
// Tiered: past events are final and effectively immutable, today needs
// fresh data for flex times and live scores, tomorrow can still flex, and
// everything further out is stable.
func (c TTLConfig) EventsTTL(targetDate, now time.Time) time.Duration {
	daysOut := daysBetween(now, targetDate)
	switch {
	case daysOut < 0:
		return 180 * 24 * time.Hour
	case daysOut == 0:
		return 30 * time.Minute
	case daysOut == 1:
		return 4 * time.Hour
	default:
		return c.Events
	}
}

func daysBetween(now, target time.Time) int {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	y, m, d := target.Date()
	targetDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(targetDate.Sub(nowDate) / (24 * time.Hour))
}

// Config is the full federation configuration, passed explicitly at
// construction. There is no module-level provider state.
type Config struct {
	Providers []ProviderConfig `yaml:"providers" json:"providers"`
	TTL       TTLConfig        `yaml:"ttl" json:"ttl"`
	// MergeLeagueTeams unions league rosters across providers instead of
	// returning the first non-empty roster. League-team discovery is the
	// only mergeable operation.
	MergeLeagueTeams bool `yaml:"merge_league_teams" json:"merge_league_teams"`
}

// DefaultConfig derives the provider order from the external source table,
// so the built-in priorities live in one place.
func DefaultConfig() Config {
	sources := clients.GetActiveExternalSources()
	providers := make([]ProviderConfig, 0, len(sources))
	for _, source := range sources {
		providers = append(providers, ProviderConfig{
			Name:     string(source.Source),
			Priority: source.Priority,
			Enabled:  source.Active,
		})
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Priority < providers[j].Priority
	})

	return Config{
		Providers:        providers,
		TTL:              DefaultTTLConfig(),
		MergeLeagueTeams: true,
	}
}

func (c Config) validate() error {
	enabled := 0
	seen := make(map[string]bool)
	for _, pc := range c.Providers {
		if pc.Name == "" {
			return fmt.Errorf("provider config with empty name")
		}
		if seen[pc.Name] {
			return fmt.Errorf("duplicate provider config for %q", pc.Name)
		}
		seen[pc.Name] = true
		if pc.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("no providers enabled")
	}
	return nil
}
