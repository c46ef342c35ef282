package espn_client

const (
	// Base URL
	BaseURL = "https://site.api.espn.com"

	// API Endpoints. Sport and league are path segments, e.g.
	// /apis/site/v2/sports/football/nfl/scoreboard
	ScoreboardEndpoint   = "/apis/site/v2/sports/%s/%s/scoreboard"
	TeamsEndpoint        = "/apis/site/v2/sports/%s/%s/teams"
	TeamEndpoint         = "/apis/site/v2/sports/%s/%s/teams/%s"
	TeamScheduleEndpoint = "/apis/site/v2/sports/%s/%s/teams/%s/schedule"
	SummaryEndpoint      = "/apis/site/v2/sports/%s/%s/summary?event=%s"
	StandingsEndpoint    = "/apis/v2/sports/%s/%s/standings"

	// Query formats
	ScoreboardDateFormat = "20060102"

	// Headers
	AcceptHeader    = "Accept"
	JsonContentType = "application/json"
)
