package sportsdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/sportsfed/go/clients/sportsdb_client"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/rs/zerolog/log"
)

// statusTable maps TheSportsDB status strings to the closed EventState
// enum. The API mixes terse codes ("NS", "FT") with prose ("Match
// Finished") depending on the sport, so both spellings are declared.
// Anything unrecognized degrades to scheduled with a warning.
var statusTable = map[string]models.EventState{
	"":               models.EventStateScheduled,
	"NS":             models.EventStateScheduled,
	"NOT STARTED":    models.EventStateScheduled,
	"TBD":            models.EventStateScheduled,
	"1H":             models.EventStateLive,
	"2H":             models.EventStateLive,
	"HT":             models.EventStateLive,
	"ET":             models.EventStateLive,
	"BT":             models.EventStateLive,
	"Q1":             models.EventStateLive,
	"Q2":             models.EventStateLive,
	"Q3":             models.EventStateLive,
	"Q4":             models.EventStateLive,
	"P1":             models.EventStateLive,
	"P2":             models.EventStateLive,
	"P3":             models.EventStateLive,
	"OT":             models.EventStateLive,
	"P":              models.EventStateLive,
	"LIVE":           models.EventStateLive,
	"IN PLAY":        models.EventStateLive,
	"FT":             models.EventStateFinal,
	"AET":            models.EventStateFinal,
	"AOT":            models.EventStateFinal,
	"PEN":            models.EventStateFinal,
	"FIN":            models.EventStateFinal,
	"FINISHED":       models.EventStateFinal,
	"MATCH FINISHED": models.EventStateFinal,
	"POST":           models.EventStatePostponed,
	"PST":            models.EventStatePostponed,
	"POSTPONED":      models.EventStatePostponed,
	"SUSP":           models.EventStatePostponed,
	"SUSPENDED":      models.EventStatePostponed,
	"CANC":           models.EventStateCancelled,
	"CANCELLED":      models.EventStateCancelled,
	"ABD":            models.EventStateCancelled,
	"ABANDONED":      models.EventStateCancelled,
}

func normalizeState(rawStatus string) models.EventState {
	if state, ok := statusTable[strings.ToUpper(strings.TrimSpace(rawStatus))]; ok {
		return state
	}
	log.Warn().Str("provider", ProviderName).Str("status", rawStatus).Msg("unrecognized status, defaulting to scheduled")
	return models.EventStateScheduled
}

func normalizeStatus(wire sportsdb_client.SDBEvent) models.EventStatus {
	state := normalizeState(wire.StrStatus)

	normalized := models.EventStatus{State: state}
	if state != models.EventStateLive && state != models.EventStateFinal {
		return normalized
	}

	if wire.StrStatus != "" {
		detail := wire.StrStatus
		normalized.Detail = &detail
	}
	// StrProgress carries the live period/clock as free text ("Q3 05:12").
	if state == models.EventStateLive && wire.StrProgress != "" {
		clock := wire.StrProgress
		normalized.Clock = &clock
	}
	return normalized
}

// parseEventTime resolves the event instant. strTimestamp is authoritative
// and already UTC; older records only carry dateEvent plus an optional
// strTime, also UTC.
func parseEventTime(wire sportsdb_client.SDBEvent) (time.Time, error) {
	if wire.StrTimestamp != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, wire.StrTimestamp); err == nil {
				return ts.UTC(), nil
			}
		}
	}

	if wire.DateEvent == "" {
		return time.Time{}, fmt.Errorf("event %s has no date", wire.IDEvent)
	}

	clock := wire.StrTime
	if clock == "" {
		clock = "00:00:00"
	}
	ts, err := time.Parse("2006-01-02 15:04:05", wire.DateEvent+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s: unparseable time %q %q", wire.IDEvent, wire.DateEvent, wire.StrTime)
	}
	return ts.UTC(), nil
}

func normalizeColor(color string) *string {
	trimmed := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeTeam(wire sportsdb_client.SDBTeam, league, sport string) models.Team {
	team := models.Team{
		ID:           wire.IDTeam,
		Provider:     ProviderName,
		Name:         wire.StrTeam,
		ShortName:    wire.StrTeamShort,
		Abbreviation: wire.StrTeamShort,
		League:       league,
		Sport:        sport,
		Color:        normalizeColor(wire.StrColour1),
	}

	if team.ShortName == "" {
		team.ShortName = wire.StrTeam
	}
	if len(team.Abbreviation) > 4 {
		team.Abbreviation = ""
	}
	team.Abbreviation = strings.ToUpper(team.Abbreviation)

	if wire.StrTeamBadge != "" {
		logo := wire.StrTeamBadge
		team.LogoURL = &logo
	}

	return team
}

// eventTeam builds the embedded team snapshot from the fields an event
// payload carries. Events do not include the full team object, so the
// snapshot is name-and-badge only.
func eventTeam(id, name, badge, league, sport string) models.Team {
	team := models.Team{
		ID:        id,
		Provider:  ProviderName,
		Name:      name,
		ShortName: name,
		League:    league,
		Sport:     sport,
	}
	if badge != "" {
		logo := badge
		team.LogoURL = &logo
	}
	return team
}

func normalizeEvent(wire sportsdb_client.SDBEvent, league, sport string) (*models.Event, error) {
	if wire.IDHomeTeam == "" || wire.IDAwayTeam == "" {
		return nil, fmt.Errorf("event %s is missing a home or away team", wire.IDEvent)
	}

	startTime, err := parseEventTime(wire)
	if err != nil {
		return nil, err
	}

	status := normalizeStatus(wire)

	name := wire.StrEvent
	if name == "" {
		name = fmt.Sprintf("%s vs %s", wire.StrHomeTeam, wire.StrAwayTeam)
	}

	event := models.Event{
		ID:         wire.IDEvent,
		Provider:   ProviderName,
		Name:       name,
		ShortName:  wire.StrEventAlternate,
		StartTime:  startTime,
		HomeTeam:   eventTeam(wire.IDHomeTeam, wire.StrHomeTeam, wire.StrHomeTeamBadge, league, sport),
		AwayTeam:   eventTeam(wire.IDAwayTeam, wire.StrAwayTeam, wire.StrAwayTeamBadge, league, sport),
		Status:     status,
		League:     league,
		Sport:      sport,
		Broadcasts: []string{},
	}

	if event.ShortName == "" {
		event.ShortName = name
	}

	if status.State == models.EventStateLive || status.State == models.EventStateFinal {
		event.HomeScore = parseScore(wire.IntHomeScore)
		event.AwayScore = parseScore(wire.IntAwayScore)
	}

	if wire.StrVenue != "" {
		venue := models.Venue{Name: wire.StrVenue}
		if wire.StrCity != "" {
			city := wire.StrCity
			venue.City = &city
		}
		if wire.StrCountry != "" {
			country := wire.StrCountry
			venue.Country = &country
		}
		event.Venue = &venue
	}

	for _, station := range strings.Split(wire.StrTVStation, ",") {
		if station = strings.TrimSpace(station); station != "" {
			event.Broadcasts = append(event.Broadcasts, station)
		}
	}

	// Seasons arrive as "2024" or "2024-2025"; the leading year is the
	// season year either way.
	if len(wire.StrSeason) >= 4 {
		if year, err := strconv.Atoi(wire.StrSeason[:4]); err == nil {
			event.SeasonYear = &year
		}
	}

	return &event, nil
}

// normalizeEvents drops unmappable records instead of failing the batch.
func normalizeEvents(wires []sportsdb_client.SDBEvent, league, sport string) []models.Event {
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

func parseScore(value *string) *int {
	if value == nil || *value == "" {
		return nil
	}
	score, err := strconv.Atoi(*value)
	if err != nil {
		return nil
	}
	return &score
}

// normalizeTableEntry maps a league table row to TeamStats. The table only
// covers win/loss/draw counts, rank and recent form; TheSportsDB has no
// home/away splits or conference concept.
func normalizeTableEntry(entry sportsdb_client.SDBTableEntry) models.TeamStats {
	wins := parseTableInt(entry.IntWin)
	losses := parseTableInt(entry.IntLoss)
	draws := parseTableInt(entry.IntDraw)

	stats := models.TeamStats{
		Wins:   wins,
		Losses: losses,
		Ties:   draws,
	}

	if draws > 0 {
		stats.Record = fmt.Sprintf("%d-%d-%d", wins, losses, draws)
	} else {
		stats.Record = fmt.Sprintf("%d-%d", wins, losses)
	}

	if rank := parseTableInt(entry.IntRank); rank > 0 {
		stats.Rank = &rank
	}
	if entry.StrForm != "" {
		streak, count := formToStreak(entry.StrForm)
		if streak != "" {
			stats.Streak = &streak
			stats.StreakCount = count
		}
	}

	return stats
}

// formToStreak condenses a form string like "WWLWW" into the current
// streak ("W2") reading from the most recent result.
func formToStreak(form string) (string, int) {
	form = strings.TrimSpace(form)
	if form == "" {
		return "", 0
	}
	last := form[len(form)-1]
	count := 0
	for i := len(form) - 1; i >= 0 && form[i] == last; i-- {
		count++
	}
	return fmt.Sprintf("%c%d", last, count), count
}

func parseTableInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
