package sportsdb_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// TheSportsDB API response structures. Numeric values arrive as strings
// (or null), so scores and rounds stay *string on the wire.

type SDBEventsResponse struct {
	Events []SDBEvent `json:"events"`
}

type SDBEvent struct {
	IDEvent           string  `json:"idEvent"`
	StrEvent          string  `json:"strEvent"`
	StrEventAlternate string  `json:"strEventAlternate"`
	StrLeague         string  `json:"strLeague"`
	IDLeague          string  `json:"idLeague"`
	StrSport          string  `json:"strSport"`
	StrSeason         string  `json:"strSeason"`
	StrHomeTeam       string  `json:"strHomeTeam"`
	IDHomeTeam        string  `json:"idHomeTeam"`
	StrAwayTeam       string  `json:"strAwayTeam"`
	IDAwayTeam        string  `json:"idAwayTeam"`
	IntHomeScore      *string `json:"intHomeScore"`
	IntAwayScore      *string `json:"intAwayScore"`
	StrStatus         string  `json:"strStatus"`
	StrProgress       string  `json:"strProgress"`
	DateEvent         string  `json:"dateEvent"`
	StrTime           string  `json:"strTime"`
	StrTimestamp      string  `json:"strTimestamp"`
	StrVenue          string  `json:"strVenue"`
	StrCountry        string  `json:"strCountry"`
	StrCity           string  `json:"strCity"`
	StrTVStation      string  `json:"strTVStation"`
	StrHomeTeamBadge  string  `json:"strHomeTeamBadge"`
	StrAwayTeamBadge  string  `json:"strAwayTeamBadge"`
}

// GetEventsByDay retrieves all events for a league on one calendar date.
// TheSportsDB interprets the date in UTC.
func (c *SportsDBClient) GetEventsByDay(ctx context.Context, leagueID string, date time.Time) ([]SDBEvent, error) {
	endpoint := fmt.Sprintf(EventsDayEndpoint, date.Format(EventsDayDateFormat), leagueID)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by day: %w", err)
	}

	var response SDBEventsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Events, nil
}

// GetNextEvents retrieves a team's upcoming events (the API caps this at 5).
func (c *SportsDBClient) GetNextEvents(ctx context.Context, teamID string) ([]SDBEvent, error) {
	endpoint := fmt.Sprintf(EventsNextEndpoint, url.QueryEscape(teamID))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get next events: %w", err)
	}

	var response SDBEventsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Events, nil
}

// GetLastEvents retrieves a team's most recently played events.
func (c *SportsDBClient) GetLastEvents(ctx context.Context, teamID string) ([]SDBEvent, error) {
	endpoint := fmt.Sprintf(EventsLastEndpoint, url.QueryEscape(teamID))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get last events: %w", err)
	}

	// The eventslast endpoint nests under "results" instead of "events".
	var response struct {
		Results []SDBEvent `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Results, nil
}

// LookupEvent retrieves a single event by id. Returns nil when the id is
// unknown (the API responds with a null events array).
func (c *SportsDBClient) LookupEvent(ctx context.Context, eventID string) (*SDBEvent, error) {
	endpoint := fmt.Sprintf(LookupEventEndpoint, url.QueryEscape(eventID))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup event: %w", err)
	}

	var response SDBEventsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	if len(response.Events) == 0 {
		return nil, nil
	}
	return &response.Events[0], nil
}
