package espn_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ESPN site API response structures. Only the fields the normalizer reads
// are declared; the API returns far more.

type ScoreboardResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

type ScoreboardEvent struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Season       Season        `json:"season"`
	Competitions []Competition `json:"competitions"`
	Status       Status        `json:"status"`
}

type Season struct {
	Year int    `json:"year"`
	Type int    `json:"type"`
	Slug string `json:"slug"`
}

type Competition struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Venue       *Venue       `json:"venue,omitempty"`
	Competitors []Competitor `json:"competitors"`
	Broadcasts  []Broadcast  `json:"broadcasts"`
	Status      Status       `json:"status"`
}

type Venue struct {
	FullName string       `json:"fullName"`
	Address  VenueAddress `json:"address"`
}

type VenueAddress struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type Competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     Team   `json:"team"`
}

type Broadcast struct {
	Market string   `json:"market"`
	Names  []string `json:"names"`
}

type Status struct {
	Clock        float64    `json:"clock"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

type StatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}

// GetScoreboard retrieves all events for a league on one calendar date.
// The date is sent in ESPN's compact YYYYMMDD form.
func (c *EspnClient) GetScoreboard(ctx context.Context, sportPath, leaguePath string, date time.Time) (*ScoreboardResponse, error) {
	endpoint := fmt.Sprintf(ScoreboardEndpoint, sportPath, leaguePath)
	endpoint = fmt.Sprintf("%s?dates=%s", endpoint, date.Format(ScoreboardDateFormat))

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	var response ScoreboardResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}

// SummaryResponse is the event detail payload. The header carries the same
// competition shape the scoreboard uses.
type SummaryResponse struct {
	Header SummaryHeader `json:"header"`
}

type SummaryHeader struct {
	ID           string        `json:"id"`
	Season       Season        `json:"season"`
	Competitions []Competition `json:"competitions"`
}

// GetEventSummary retrieves a single event by its ESPN event id.
func (c *EspnClient) GetEventSummary(ctx context.Context, sportPath, leaguePath, eventID string) (*SummaryResponse, error) {
	endpoint := fmt.Sprintf(SummaryEndpoint, sportPath, leaguePath, eventID)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get event summary: %w", err)
	}

	var response SummaryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}
