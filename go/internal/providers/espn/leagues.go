package espn

// leagueInfo maps a normalized league key to ESPN's API path segments.
type leagueInfo struct {
	Sport       string // normalized sport name stamped on records
	SportPath   string // ESPN sport path segment
	LeaguePath  string // ESPN league path segment
	Conferences bool   // league has a conference structure in standings
}

// leagueTable is the closed set of leagues this adapter serves. Adding a
// league means adding a row here; nothing else consults ESPN path names.
var leagueTable = map[string]leagueInfo{
	"nfl":   {Sport: "football", SportPath: "football", LeaguePath: "nfl", Conferences: true},
	"ncaaf": {Sport: "football", SportPath: "football", LeaguePath: "college-football", Conferences: true},
	"nba":   {Sport: "basketball", SportPath: "basketball", LeaguePath: "nba", Conferences: true},
	"wnba":  {Sport: "basketball", SportPath: "basketball", LeaguePath: "wnba", Conferences: true},
	"ncaab": {Sport: "basketball", SportPath: "basketball", LeaguePath: "mens-college-basketball", Conferences: true},
	"mlb":   {Sport: "baseball", SportPath: "baseball", LeaguePath: "mlb", Conferences: true},
	"nhl":   {Sport: "hockey", SportPath: "hockey", LeaguePath: "nhl", Conferences: true},
	"mls":   {Sport: "soccer", SportPath: "soccer", LeaguePath: "usa.1", Conferences: false},
	"epl":   {Sport: "soccer", SportPath: "soccer", LeaguePath: "eng.1", Conferences: false},
}

// SupportedLeagues returns the league keys this adapter serves.
func SupportedLeagues() []string {
	keys := make([]string, 0, len(leagueTable))
	for key := range leagueTable {
		keys = append(keys, key)
	}
	return keys
}
