package models

// TeamStats holds aggregate standings data for a team as one provider
// reports it. Record is the provider's own win-loss(-draw) text; no
// cross-provider arithmetic is ever performed on it.
type TeamStats struct {
	Record           string   `json:"record"`
	Wins             int      `json:"wins"`
	Losses           int      `json:"losses"`
	Ties             int      `json:"ties"`
	HomeRecord       *string  `json:"home_record,omitempty"`
	AwayRecord       *string  `json:"away_record,omitempty"`
	Streak           *string  `json:"streak,omitempty"`
	StreakCount      int      `json:"streak_count"`
	Rank             *int     `json:"rank,omitempty"`
	PlayoffSeed      *int     `json:"playoff_seed,omitempty"`
	GamesBack        *float64 `json:"games_back,omitempty"`
	Conference       *string  `json:"conference,omitempty"`
	ConferenceAbbrev *string  `json:"conference_abbrev,omitempty"`
	Division         *string  `json:"division,omitempty"`
}
