package sportsdb_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type SDBTableResponse struct {
	Table []SDBTableEntry `json:"table"`
}

type SDBTableEntry struct {
	IDTeam    string `json:"idTeam"`
	StrTeam   string `json:"strTeam"`
	IntRank   string `json:"intRank"`
	IntWin    string `json:"intWin"`
	IntLoss   string `json:"intLoss"`
	IntDraw   string `json:"intDraw"`
	IntPoints string `json:"intPoints"`
	StrForm   string `json:"strForm"`
	StrBadge  string `json:"strBadge"`
	StrLeague string `json:"strLeague"`
	IDLeague  string `json:"idLeague"`
	StrSeason string `json:"strSeason"`
}

// GetLeagueTable retrieves the standings table for a league season.
// Season is TheSportsDB's season label, e.g. "2024-2025".
func (c *SportsDBClient) GetLeagueTable(ctx context.Context, leagueID, season string) ([]SDBTableEntry, error) {
	endpoint := fmt.Sprintf(LookupTableEndpoint, url.QueryEscape(leagueID), url.QueryEscape(season))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get league table: %w", err)
	}

	var response SDBTableResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Table, nil
}
