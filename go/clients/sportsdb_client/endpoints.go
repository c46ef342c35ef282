package sportsdb_client

const (
	// Base URL
	BaseURL = "https://www.thesportsdb.com"

	// FreeTierKey is TheSportsDB's public test key
	FreeTierKey = "3"

	// API Endpoints (relative to /api/v1/json/{key}/)
	EventsDayEndpoint   = "eventsday.php?d=%s&id=%s"
	EventsNextEndpoint  = "eventsnext.php?id=%s"
	EventsLastEndpoint  = "eventslast.php?id=%s"
	LookupEventEndpoint = "lookupevent.php?id=%s"
	LookupTeamEndpoint  = "lookupteam.php?id=%s"
	LeagueTeamsEndpoint = "lookup_all_teams.php?id=%s"
	SearchTeamsEndpoint = "searchteams.php?t=%s"
	LookupTableEndpoint = "lookuptable.php?l=%s&s=%s"

	// Query formats
	EventsDayDateFormat = "2006-01-02"

	// Headers
	JsonHeader      = "Accept"
	JsonContentType = "application/json"
)
