package espn_client

import (
	"context"
	"encoding/json"
	"fmt"
)

type Team struct {
	ID               string     `json:"id"`
	Location         string     `json:"location"`
	Name             string     `json:"name"`
	Abbreviation     string     `json:"abbreviation"`
	DisplayName      string     `json:"displayName"`
	ShortDisplayName string     `json:"shortDisplayName"`
	Color            string     `json:"color"`
	AlternateColor   string     `json:"alternateColor"`
	Logo             string     `json:"logo"`
	Logos            []TeamLogo `json:"logos"`
}

type TeamLogo struct {
	Href string `json:"href"`
}

// The teams listing nests each team one level deeper than everything else.
type TeamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team Team `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type TeamResponse struct {
	Team Team `json:"team"`
}

type ScheduleResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

// GetTeams retrieves the full team roster for a league.
func (c *EspnClient) GetTeams(ctx context.Context, sportPath, leaguePath string) ([]Team, error) {
	endpoint := fmt.Sprintf(TeamsEndpoint, sportPath, leaguePath)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	var response TeamsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	var teams []Team
	for _, sport := range response.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				teams = append(teams, entry.Team)
			}
		}
	}

	return teams, nil
}

// GetTeam retrieves a single team by its ESPN team id.
func (c *EspnClient) GetTeam(ctx context.Context, sportPath, leaguePath, teamID string) (*TeamResponse, error) {
	endpoint := fmt.Sprintf(TeamEndpoint, sportPath, leaguePath, teamID)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var response TeamResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}

// GetTeamSchedule retrieves a team's schedule for the current season.
func (c *EspnClient) GetTeamSchedule(ctx context.Context, sportPath, leaguePath, teamID string) (*ScheduleResponse, error) {
	endpoint := fmt.Sprintf(TeamScheduleEndpoint, sportPath, leaguePath, teamID)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get team schedule: %w", err)
	}

	var response ScheduleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}
