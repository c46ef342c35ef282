package models

import "time"

// EventState is the closed set of live/finished states an event can be in.
type EventState string

const (
	EventStateScheduled EventState = "scheduled"
	EventStateLive      EventState = "live"
	EventStateFinal     EventState = "final"
	EventStatePostponed EventState = "postponed"
	EventStateCancelled EventState = "cancelled"
)

// EventStatus describes where an event currently stands. Detail, Period and
// Clock only carry meaning when State is live or final.
type EventStatus struct {
	State  EventState `json:"state"`
	Detail *string    `json:"detail,omitempty"`
	Period *int       `json:"period,omitempty"`
	Clock  *string    `json:"clock,omitempty"`
}

// Venue is a location where an event occurs. Only the name is required.
type Venue struct {
	Name    string  `json:"name"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}

// Event represents a single scheduled or played contest.
//
// HomeTeam and AwayTeam are full Team snapshots captured at fetch time, not
// references; StartTime is always a UTC instant by the time an event leaves
// a normalizer; Broadcasts is never nil.
type Event struct {
	ID         string      `json:"id"`
	Provider   string      `json:"provider"`
	Name       string      `json:"name"`
	ShortName  string      `json:"short_name"`
	StartTime  time.Time   `json:"start_time"`
	HomeTeam   Team        `json:"home_team"`
	AwayTeam   Team        `json:"away_team"`
	Status     EventStatus `json:"status"`
	League     string      `json:"league"`
	Sport      string      `json:"sport"`
	HomeScore  *int        `json:"home_score,omitempty"`
	AwayScore  *int        `json:"away_score,omitempty"`
	Venue      *Venue      `json:"venue,omitempty"`
	Broadcasts []string    `json:"broadcasts"`
	SeasonYear *int        `json:"season_year,omitempty"`
	SeasonType *string     `json:"season_type,omitempty"`
}
