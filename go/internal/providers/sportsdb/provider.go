package sportsdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcdev12/sportsfed/go/clients/sportsdb_client"
	"github.com/mcdev12/sportsfed/go/internal/fuzzy"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/mcdev12/sportsfed/go/internal/providers"
)

// ProviderName is the stable identifier stamped on every record this
// adapter produces.
const ProviderName = "sportsdb"

// Provider adapts TheSportsDB API to the provider capability contract.
// It is the fallback source: broader league coverage than ESPN but
// shallower detail (no conferences, no broadcast metadata on most events).
type Provider struct {
	api     *sportsdb_client.SportsDBClient
	matcher *fuzzy.Matcher
}

var _ providers.Provider = (*Provider)(nil)

func NewProvider(apiKey string) *Provider {
	return &Provider{
		api:     sportsdb_client.NewSportsDBClient(apiKey),
		matcher: fuzzy.NewMatcher(),
	}
}

// NewProviderWithClient is used by tests to point the adapter at a fixture
// server.
func NewProviderWithClient(api *sportsdb_client.SportsDBClient) *Provider {
	return &Provider{api: api, matcher: fuzzy.NewMatcher()}
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) SupportsLeague(league string) bool {
	_, ok := leagueTable[league]
	return ok
}

func (p *Provider) GetTeam(ctx context.Context, teamID, league string) (*models.Team, error) {
	info, ok := leagueTable[league]
	if !ok {
		return nil, nil
	}

	wire, err := p.api.LookupTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: lookup team %s: %w", teamID, err)
	}
	if wire == nil {
		return nil, nil
	}

	team := normalizeTeam(*wire, league, info.Sport)
	return &team, nil
}

func (p *Provider) GetTeamSchedule(ctx context.Context, teamID, league string, daysAhead int) ([]models.Event, error) {
	info, ok := leagueTable[league]
	if !ok {
		return []models.Event{}, nil
	}

	wires, err := p.api.GetNextEvents(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: get next events for %s: %w", teamID, err)
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, daysAhead)

	events := normalizeEvents(wires, league, info.Sport)
	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.StartTime.Before(now) || event.StartTime.After(horizon) {
			continue
		}
		upcoming = append(upcoming, event)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})

	return upcoming, nil
}

func (p *Provider) GetEvents(ctx context.Context, league string, date time.Time) ([]models.Event, error) {
	info, ok := leagueTable[league]
	if !ok {
		return []models.Event{}, nil
	}

	wires, err := p.api.GetEventsByDay(ctx, info.ID, date)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: get events for %s: %w", league, err)
	}

	// TheSportsDB interprets the query date in UTC; keep only events that
	// fall on the requested date in the caller's terms.
	events := normalizeEvents(wires, league, info.Sport)
	matching := make([]models.Event, 0, len(events))
	for _, event := range events {
		if sameDate(event.StartTime, date) {
			matching = append(matching, event)
		}
	}

	return matching, nil
}

func (p *Provider) GetEvent(ctx context.Context, eventID, league string) (*models.Event, error) {
	info, ok := leagueTable[league]
	if !ok {
		return nil, nil
	}

	wire, err := p.api.LookupEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: lookup event %s: %w", eventID, err)
	}
	if wire == nil {
		return nil, nil
	}

	event, err := normalizeEvent(*wire, league, info.Sport)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: normalize event %s: %w", eventID, err)
	}
	return event, nil
}

func (p *Provider) GetTeamStats(ctx context.Context, teamID, league string) (*models.TeamStats, error) {
	info, ok := leagueTable[league]
	if !ok {
		return nil, nil
	}

	entries, err := p.api.GetLeagueTable(ctx, info.ID, info.currentSeason(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("sportsdb: get league table for %s: %w", league, err)
	}

	for _, entry := range entries {
		if entry.IDTeam == teamID {
			stats := normalizeTableEntry(entry)
			return &stats, nil
		}
	}

	return nil, nil
}

func (p *Provider) GetLeagueTeams(ctx context.Context, league string) ([]models.Team, error) {
	info, ok := leagueTable[league]
	if !ok {
		return []models.Team{}, nil
	}

	wires, err := p.api.GetLeagueTeams(ctx, info.ID)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: get league teams for %s: %w", league, err)
	}

	teams := make([]models.Team, 0, len(wires))
	for _, wire := range wires {
		teams = append(teams, normalizeTeam(wire, league, info.Sport))
	}

	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return teams, nil
}

// GetTeamsByConference always returns an empty map: TheSportsDB has no
// conference concept for any league it serves.
func (p *Provider) GetTeamsByConference(ctx context.Context, league string) (map[string][]models.Team, error) {
	return map[string][]models.Team{}, nil
}

func (p *Provider) SearchTeams(ctx context.Context, query, league string) ([]models.Team, error) {
	wires, err := p.api.SearchTeams(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sportsdb: search teams %q: %w", query, err)
	}

	var candidates []models.Team
	for _, wire := range wires {
		key, ok := leagueKeyFor(wire.IDLeague)
		if !ok {
			continue
		}
		if league != "" && key != league {
			continue
		}
		candidates = append(candidates, normalizeTeam(wire, key, leagueTable[key].Sport))
	}

	results := p.matcher.RankTeams(query, candidates)
	if results == nil {
		results = []models.Team{}
	}
	return results, nil
}

// leagueKeyFor reverse-maps TheSportsDB league ids to normalized keys.
func leagueKeyFor(leagueID string) (string, bool) {
	for key, info := range leagueTable {
		if info.ID == leagueID {
			return key, true
		}
	}
	return "", false
}

func sameDate(ts time.Time, date time.Time) bool {
	local := ts.In(date.Location())
	y1, m1, d1 := local.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
