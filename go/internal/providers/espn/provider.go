package espn

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcdev12/sportsfed/go/clients/espn_client"
	"github.com/mcdev12/sportsfed/go/internal/fuzzy"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/mcdev12/sportsfed/go/internal/providers"
)

// ProviderName is the stable identifier stamped on every record this
// adapter produces.
const ProviderName = "espn"

// Provider adapts the ESPN site API to the provider capability contract.
type Provider struct {
	api     *espn_client.EspnClient
	matcher *fuzzy.Matcher
}

var _ providers.Provider = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{
		api:     espn_client.NewEspnClient(),
		matcher: fuzzy.NewMatcher(),
	}
}

// NewProviderWithClient is used by tests to point the adapter at a fixture
// server.
func NewProviderWithClient(api *espn_client.EspnClient) *Provider {
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

	response, err := p.api.GetTeam(ctx, info.SportPath, info.LeaguePath, teamID)
	if err != nil {
		return nil, fmt.Errorf("espn: get team %s: %w", teamID, err)
	}
	if response.Team.ID == "" {
		return nil, nil
	}

	team := normalizeTeam(response.Team, league, info.Sport)
	return &team, nil
}

func (p *Provider) GetTeamSchedule(ctx context.Context, teamID, league string, daysAhead int) ([]models.Event, error) {
	info, ok := leagueTable[league]
	if !ok {
		return []models.Event{}, nil
	}

	response, err := p.api.GetTeamSchedule(ctx, info.SportPath, info.LeaguePath, teamID)
	if err != nil {
		return nil, fmt.Errorf("espn: get team schedule %s: %w", teamID, err)
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, daysAhead)

	events := normalizeEvents(response.Events, league, info.Sport)
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

	response, err := p.api.GetScoreboard(ctx, info.SportPath, info.LeaguePath, date)
	if err != nil {
		return nil, fmt.Errorf("espn: get events for %s: %w", league, err)
	}

	// ESPN already filters by the dates parameter, but late games can
	// spill into the neighboring day in the caller's terms. Keep only
	// events falling on the requested calendar date.
	events := normalizeEvents(response.Events, league, info.Sport)
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

	response, err := p.api.GetEventSummary(ctx, info.SportPath, info.LeaguePath, eventID)
	if err != nil {
		return nil, fmt.Errorf("espn: get event %s: %w", eventID, err)
	}
	if response.Header.ID == "" || len(response.Header.Competitions) == 0 {
		return nil, nil
	}

	competition := response.Header.Competitions[0]
	wire := espn_client.ScoreboardEvent{
		ID:           response.Header.ID,
		Date:         competition.Date,
		Season:       response.Header.Season,
		Competitions: []espn_client.Competition{competition},
		Status:       competition.Status,
	}

	event, err := normalizeEvent(wire, league, info.Sport)
	if err != nil {
		return nil, fmt.Errorf("espn: normalize event %s: %w", eventID, err)
	}
	if event.Name == "" {
		event.Name = fmt.Sprintf("%s at %s", event.AwayTeam.Name, event.HomeTeam.Name)
	}
	if event.ShortName == "" {
		event.ShortName = fmt.Sprintf("%s @ %s", event.AwayTeam.Abbreviation, event.HomeTeam.Abbreviation)
	}

	return event, nil
}

func (p *Provider) GetTeamStats(ctx context.Context, teamID, league string) (*models.TeamStats, error) {
	info, ok := leagueTable[league]
	if !ok {
		return nil, nil
	}

	response, err := p.api.GetStandings(ctx, info.SportPath, info.LeaguePath)
	if err != nil {
		return nil, fmt.Errorf("espn: get standings for %s: %w", league, err)
	}

	if response.Standings != nil {
		for _, entry := range response.Standings.Entries {
			if entry.Team.ID == teamID {
				stats := normalizeStatsEntry(entry, "", "", "")
				return &stats, nil
			}
		}
	}

	for _, conference := range response.Children {
		if stats := findStats(conference, teamID, conference.Name, conference.Abbreviation); stats != nil {
			return stats, nil
		}
	}

	return nil, nil
}

// findStats walks a standings group and its nested division groups.
func findStats(group espn_client.StandingsGroup, teamID, conference, conferenceAbbrev string) *models.TeamStats {
	for _, entry := range group.Standings.Entries {
		if entry.Team.ID == teamID {
			division := ""
			if group.Name != conference {
				division = group.Name
			}
			stats := normalizeStatsEntry(entry, conference, conferenceAbbrev, division)
			return &stats
		}
	}
	for _, child := range group.Children {
		if stats := findStats(child, teamID, conference, conferenceAbbrev); stats != nil {
			return stats
		}
	}
	return nil
}

func (p *Provider) GetLeagueTeams(ctx context.Context, league string) ([]models.Team, error) {
	info, ok := leagueTable[league]
	if !ok {
		return []models.Team{}, nil
	}

	wires, err := p.api.GetTeams(ctx, info.SportPath, info.LeaguePath)
	if err != nil {
		return nil, fmt.Errorf("espn: get league teams for %s: %w", league, err)
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

func (p *Provider) GetTeamsByConference(ctx context.Context, league string) (map[string][]models.Team, error) {
	info, ok := leagueTable[league]
	if !ok || !info.Conferences {
		return map[string][]models.Team{}, nil
	}

	response, err := p.api.GetStandings(ctx, info.SportPath, info.LeaguePath)
	if err != nil {
		return nil, fmt.Errorf("espn: get conferences for %s: %w", league, err)
	}

	conferences := make(map[string][]models.Team)
	for _, conference := range response.Children {
		teams := collectTeams(conference, league, info.Sport)
		sort.Slice(teams, func(i, j int) bool {
			return teams[i].Name < teams[j].Name
		})
		conferences[conference.Name] = teams
	}

	return conferences, nil
}

func collectTeams(group espn_client.StandingsGroup, league, sport string) []models.Team {
	var teams []models.Team
	for _, entry := range group.Standings.Entries {
		teams = append(teams, normalizeTeam(entry.Team, league, sport))
	}
	for _, child := range group.Children {
		teams = append(teams, collectTeams(child, league, sport)...)
	}
	return teams
}

func (p *Provider) SearchTeams(ctx context.Context, query, league string) ([]models.Team, error) {
	leagues := []string{league}
	if league == "" {
		leagues = SupportedLeagues()
		sort.Strings(leagues)
	}

	var candidates []models.Team
	for _, key := range leagues {
		teams, err := p.GetLeagueTeams(ctx, key)
		if err != nil {
			// A single league failing should not empty the whole search.
			continue
		}
		candidates = append(candidates, teams...)
	}

	results := p.matcher.RankTeams(query, candidates)
	if results == nil {
		results = []models.Team{}
	}
	return results, nil
}

func sameDate(ts time.Time, date time.Time) bool {
	local := ts.In(date.Location())
	y1, m1, d1 := local.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
