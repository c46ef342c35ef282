package espn_client

import (
	"context"
	"encoding/json"
	"fmt"
)

type StandingsResponse struct {
	Name      string           `json:"name"`
	Children  []StandingsGroup `json:"children"`
	Standings *StandingsTable  `json:"standings,omitempty"`
}

// StandingsGroup is a conference or division grouping. Leagues without a
// conference structure return a flat top-level standings table instead.
type StandingsGroup struct {
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	Standings    StandingsTable   `json:"standings"`
	Children     []StandingsGroup `json:"children"`
}

type StandingsTable struct {
	Entries []StandingsEntry `json:"entries"`
}

type StandingsEntry struct {
	Team  Team            `json:"team"`
	Stats []StandingsStat `json:"stats"`
}

type StandingsStat struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

// GetStandings retrieves league standings, grouped by conference where the
// league has one.
func (c *EspnClient) GetStandings(ctx context.Context, sportPath, leaguePath string) (*StandingsResponse, error) {
	endpoint := fmt.Sprintf(StandingsEndpoint, sportPath, leaguePath)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	var response StandingsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}
