package sportsdb

import (
	"fmt"
	"time"
)

// seasonStyle describes how TheSportsDB labels a league's seasons.
type seasonStyle int

const (
	seasonSingle seasonStyle = iota // "2024"
	seasonSplit                     // "2024-2025"
)

// leagueInfo maps a normalized league key to TheSportsDB's numeric league
// id. The id is the only league identifier the API accepts.
type leagueInfo struct {
	ID     string
	Sport  string
	Season seasonStyle
	// SplitMonth is the first month of a split season (ignored for
	// single-year seasons).
	SplitMonth time.Month
}

var leagueTable = map[string]leagueInfo{
	"nfl":  {ID: "4391", Sport: "football", Season: seasonSingle},
	"nba":  {ID: "4387", Sport: "basketball", Season: seasonSplit, SplitMonth: time.October},
	"wnba": {ID: "4516", Sport: "basketball", Season: seasonSingle},
	"mlb":  {ID: "4424", Sport: "baseball", Season: seasonSingle},
	"nhl":  {ID: "4380", Sport: "hockey", Season: seasonSplit, SplitMonth: time.October},
	"ahl":  {ID: "4431", Sport: "hockey", Season: seasonSplit, SplitMonth: time.October},
	"epl":  {ID: "4328", Sport: "soccer", Season: seasonSplit, SplitMonth: time.August},
	"mls":  {ID: "4346", Sport: "soccer", Season: seasonSingle},
}

// currentSeason returns TheSportsDB's season label for the league at the
// given instant.
func (info leagueInfo) currentSeason(now time.Time) string {
	year := now.Year()
	if info.Season == seasonSingle {
		return fmt.Sprintf("%d", year)
	}
	if now.Month() >= info.SplitMonth {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}
