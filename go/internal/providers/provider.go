package providers

import (
	"context"
	"time"

	"github.com/mcdev12/sportsfed/go/internal/models"
)

// Provider is the capability contract every external sports data source
// must implement. Every method returns only normalized records.
//
// "Found nothing" is a zero value with a nil error: a nil record, an empty
// slice, or an empty map. Errors are reserved for transport, auth,
// rate-limit, or malformed-payload failures — the federation service treats
// any error as "this provider is temporarily unusable for this call" and
// falls through to the next one.
type Provider interface {
	// Name returns the stable lowercase identifier for this provider,
	// used for logging, cache keys, and stamping records.
	Name() string

	// SupportsLeague reports whether this provider can serve the league.
	// Must be side-effect-free and never touch the network.
	SupportsLeague(league string) bool

	// GetTeam resolves a provider-scoped team id, or nil if unknown.
	GetTeam(ctx context.Context, teamID, league string) (*models.Team, error)

	// GetTeamSchedule returns a team's upcoming events within daysAhead
	// days, sorted by start time ascending.
	GetTeamSchedule(ctx context.Context, teamID, league string, daysAhead int) ([]models.Event, error)

	// GetEvents returns all events for a league on one calendar date.
	// The provider's local notion of "date" is normalized to the caller's
	// date before comparison.
	GetEvents(ctx context.Context, league string, date time.Time) ([]models.Event, error)

	// GetEvent resolves a provider-scoped event id, or nil if unknown.
	GetEvent(ctx context.Context, eventID, league string) (*models.Event, error)

	// GetTeamStats returns standings data for a team, or nil when the
	// provider does not track standings for the league.
	GetTeamStats(ctx context.Context, teamID, league string) (*models.TeamStats, error)

	// GetLeagueTeams returns the full team roster for a league in a
	// deterministic order.
	GetLeagueTeams(ctx context.Context, league string) ([]models.Team, error)

	// GetTeamsByConference maps conference name to teams. Providers that
	// have no conference concept return an empty map, never an error.
	GetTeamsByConference(ctx context.Context, league string) (map[string][]models.Team, error)

	// SearchTeams fuzzy-matches team names, best match first. League may
	// be empty to search all supported leagues.
	SearchTeams(ctx context.Context, query, league string) ([]models.Team, error)
}
