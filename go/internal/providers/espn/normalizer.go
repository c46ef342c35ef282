package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/sportsfed/go/clients/espn_client"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/rs/zerolog/log"
)

// statusTable maps ESPN status type names to the closed EventState enum.
// The table must stay exhaustive over ESPN's documented status names;
// anything unrecognized degrades to scheduled with a warning.
var statusTable = map[string]models.EventState{
	"STATUS_SCHEDULED":   models.EventStateScheduled,
	"STATUS_IN_PROGRESS": models.EventStateLive,
	"STATUS_FIRST_HALF":  models.EventStateLive,
	"STATUS_SECOND_HALF": models.EventStateLive,
	"STATUS_HALFTIME":    models.EventStateLive,
	"STATUS_END_PERIOD":  models.EventStateLive,
	"STATUS_OVERTIME":    models.EventStateLive,
	"STATUS_SHOOTOUT":    models.EventStateLive,
	"STATUS_DELAYED":     models.EventStateLive,
	"STATUS_RAIN_DELAY":  models.EventStateLive,
	"STATUS_FINAL":       models.EventStateFinal,
	"STATUS_FINAL_OT":    models.EventStateFinal,
	"STATUS_FULL_TIME":   models.EventStateFinal,
	"STATUS_FORFEIT":     models.EventStateFinal,
	"STATUS_POSTPONED":   models.EventStatePostponed,
	"STATUS_SUSPENDED":   models.EventStatePostponed,
	"STATUS_CANCELED":    models.EventStateCancelled,
	"STATUS_ABANDONED":   models.EventStateCancelled,
}

func normalizeState(statusName string) models.EventState {
	if state, ok := statusTable[statusName]; ok {
		return state
	}
	log.Warn().Str("provider", ProviderName).Str("status", statusName).Msg("unrecognized status, defaulting to scheduled")
	return models.EventStateScheduled
}

func normalizeStatus(status espn_client.Status) models.EventStatus {
	state := normalizeState(status.Type.Name)

	normalized := models.EventStatus{State: state}
	if state != models.EventStateLive && state != models.EventStateFinal {
		return normalized
	}

	if status.Type.ShortDetail != "" {
		detail := status.Type.ShortDetail
		normalized.Detail = &detail
	}
	if status.Period > 0 {
		period := status.Period
		normalized.Period = &period
	}
	if state == models.EventStateLive && status.DisplayClock != "" {
		clock := status.DisplayClock
		normalized.Clock = &clock
	}
	return normalized
}

// normalizeColor canonicalizes ESPN color codes to lowercase hex without
// the leading '#'.
func normalizeColor(color string) *string {
	trimmed := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// parseEventTime parses ESPN's Zulu timestamp ("2024-01-15T18:00Z") into a
// UTC instant. Scoreboard and schedule payloads omit seconds; summaries
// carry full RFC 3339.
func parseEventTime(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event time %q", value)
}

// normalizeTeam maps an ESPN team payload to the shared record. ESPN uses
// displayName for the full name and name for the mascot across endpoints;
// the logo lives in either logo or logos[0] depending on the endpoint.
func normalizeTeam(wire espn_client.Team, league, sport string) models.Team {
	team := models.Team{
		ID:           wire.ID,
		Provider:     ProviderName,
		Name:         wire.DisplayName,
		ShortName:    wire.Name,
		Abbreviation: wire.Abbreviation,
		League:       league,
		Sport:        sport,
		Color:        normalizeColor(wire.Color),
	}

	if team.Name == "" {
		team.Name = wire.Name
	}
	if team.ShortName == "" {
		team.ShortName = wire.ShortDisplayName
	}

	logo := wire.Logo
	if logo == "" && len(wire.Logos) > 0 {
		logo = wire.Logos[0].Href
	}
	if logo != "" {
		team.LogoURL = &logo
	}

	return team
}

// normalizeEvent maps a scoreboard event to the shared record. An event
// without both a home and an away competitor cannot be represented and is
// reported as an error so the caller can drop just that record.
func normalizeEvent(wire espn_client.ScoreboardEvent, league, sport string) (*models.Event, error) {
	if len(wire.Competitions) == 0 {
		return nil, fmt.Errorf("event %s has no competitions", wire.ID)
	}
	competition := wire.Competitions[0]

	var home, away *espn_client.Competitor
	for i := range competition.Competitors {
		competitor := &competition.Competitors[i]
		switch competitor.HomeAway {
		case "home":
			home = competitor
		case "away":
			away = competitor
		}
	}
	if home == nil || away == nil {
		return nil, fmt.Errorf("event %s is missing a home or away competitor", wire.ID)
	}

	startTime, err := parseEventTime(wire.Date)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", wire.ID, err)
	}

	status := normalizeStatus(wire.Status)

	event := models.Event{
		ID:         wire.ID,
		Provider:   ProviderName,
		Name:       wire.Name,
		ShortName:  wire.ShortName,
		StartTime:  startTime,
		HomeTeam:   normalizeTeam(home.Team, league, sport),
		AwayTeam:   normalizeTeam(away.Team, league, sport),
		Status:     status,
		League:     league,
		Sport:      sport,
		Broadcasts: []string{},
	}

	if status.State == models.EventStateLive || status.State == models.EventStateFinal {
		event.HomeScore = parseScore(home.Score)
		event.AwayScore = parseScore(away.Score)
	}

	if competition.Venue != nil && competition.Venue.FullName != "" {
		event.Venue = normalizeVenue(*competition.Venue)
	}

	for _, broadcast := range competition.Broadcasts {
		event.Broadcasts = append(event.Broadcasts, broadcast.Names...)
	}

	if wire.Season.Year > 0 {
		year := wire.Season.Year
		event.SeasonYear = &year
	}
	if wire.Season.Slug != "" {
		seasonType := wire.Season.Slug
		event.SeasonType = &seasonType
	}

	return &event, nil
}

// normalizeEvents drops unmappable records instead of failing the batch.
func normalizeEvents(wires []espn_client.ScoreboardEvent, league, sport string) []models.Event {
	events := make([]models.Event, 0, len(wires))
	for _, wire := range wires {
		event, err := normalizeEvent(wire, league, sport)
		if err != nil {
			log.Warn().Err(err).Str("provider", ProviderName).Str("league", league).Msg("dropping unmappable event")
			continue
		}
		events = append(events, *event)
	}
	return events
}

func normalizeVenue(wire espn_client.Venue) *models.Venue {
	venue := models.Venue{Name: wire.FullName}
	if wire.Address.City != "" {
		city := wire.Address.City
		venue.City = &city
	}
	if wire.Address.State != "" {
		state := wire.Address.State
		venue.State = &state
	}
	if wire.Address.Country != "" {
		country := wire.Address.Country
		venue.Country = &country
	}
	return &venue
}

func parseScore(value string) *int {
	if value == "" {
		return nil
	}
	score, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &score
}

// normalizeStatsEntry maps one standings entry to TeamStats. ESPN spreads
// the interesting numbers across a stats array keyed by name/type, so the
// mapping is a single declared switch rather than positional access.
func normalizeStatsEntry(entry espn_client.StandingsEntry, conference, conferenceAbbrev, division string) models.TeamStats {
	stats := models.TeamStats{}

	for _, stat := range entry.Stats {
		switch strings.ToLower(stat.Name) {
		case "overall", "total":
			if stats.Record == "" {
				stats.Record = stat.DisplayValue
			}
		case "wins":
			stats.Wins = int(stat.Value)
		case "losses":
			stats.Losses = int(stat.Value)
		case "ties":
			stats.Ties = int(stat.Value)
		case "home":
			homeRecord := stat.DisplayValue
			stats.HomeRecord = &homeRecord
		case "road", "away":
			awayRecord := stat.DisplayValue
			stats.AwayRecord = &awayRecord
		case "streak":
			if stat.DisplayValue != "" {
				streak := stat.DisplayValue
				stats.Streak = &streak
				stats.StreakCount = int(stat.Value)
			}
		case "playoffseed":
			if stat.Value > 0 {
				seed := int(stat.Value)
				stats.PlayoffSeed = &seed
			}
		case "gamesbehind":
			gamesBack := stat.Value
			stats.GamesBack = &gamesBack
		case "rank":
			if stat.Value > 0 {
				rank := int(stat.Value)
				stats.Rank = &rank
			}
		}
	}

	if stats.Record == "" {
		stats.Record = buildRecord(stats.Wins, stats.Losses, stats.Ties)
	}
	if conference != "" {
		stats.Conference = &conference
	}
	if conferenceAbbrev != "" {
		stats.ConferenceAbbrev = &conferenceAbbrev
	}
	if division != "" {
		stats.Division = &division
	}

	return stats
}

func buildRecord(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}
