package sportsdb_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type SDBTeamsResponse struct {
	Teams []SDBTeam `json:"teams"`
}

type SDBTeam struct {
	IDTeam       string `json:"idTeam"`
	StrTeam      string `json:"strTeam"`
	StrTeamShort string `json:"strTeamShort"`
	StrAlternate string `json:"strAlternate"`
	StrLeague    string `json:"strLeague"`
	IDLeague     string `json:"idLeague"`
	StrSport     string `json:"strSport"`
	StrTeamBadge string `json:"strTeamBadge"`
	StrStadium   string `json:"strStadium"`
	StrLocation  string `json:"strLocation"`
	StrCountry   string `json:"strCountry"`
	StrColour1   string `json:"strColour1"`
	StrColour2   string `json:"strColour2"`
}

// LookupTeam retrieves a single team by id. Returns nil for unknown ids.
func (c *SportsDBClient) LookupTeam(ctx context.Context, teamID string) (*SDBTeam, error) {
	endpoint := fmt.Sprintf(LookupTeamEndpoint, url.QueryEscape(teamID))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup team: %w", err)
	}

	var response SDBTeamsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	if len(response.Teams) == 0 {
		return nil, nil
	}
	return &response.Teams[0], nil
}

// GetLeagueTeams retrieves all teams in a league by league id.
func (c *SportsDBClient) GetLeagueTeams(ctx context.Context, leagueID string) ([]SDBTeam, error) {
	endpoint := fmt.Sprintf(LeagueTeamsEndpoint, url.QueryEscape(leagueID))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get league teams: %w", err)
	}

	var response SDBTeamsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Teams, nil
}

// SearchTeams searches teams by name across all leagues.
func (c *SportsDBClient) SearchTeams(ctx context.Context, query string) ([]SDBTeam, error) {
	endpoint := fmt.Sprintf(SearchTeamsEndpoint, url.QueryEscape(query))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	var response SDBTeamsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Teams, nil
}
