package sportsdb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mcdev12/sportsfed/go/clients/sportsdb_client"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/smartystreets/goconvey/convey"
)

func strPtr(s string) *string { return &s }

func TestNormalizeState(t *testing.T) {
	convey.Convey("Given TheSportsDB status strings", t, func() {
		convey.Convey("Terse codes and prose spellings both map", func() {
			convey.So(normalizeState("NS"), convey.ShouldEqual, models.EventStateScheduled)
			convey.So(normalizeState("Not Started"), convey.ShouldEqual, models.EventStateScheduled)
			convey.So(normalizeState("Q3"), convey.ShouldEqual, models.EventStateLive)
			convey.So(normalizeState("FT"), convey.ShouldEqual, models.EventStateFinal)
			convey.So(normalizeState("Match Finished"), convey.ShouldEqual, models.EventStateFinal)
			convey.So(normalizeState("POST"), convey.ShouldEqual, models.EventStatePostponed)
			convey.So(normalizeState("CANC"), convey.ShouldEqual, models.EventStateCancelled)
		})

		convey.Convey("Empty means scheduled, unknown degrades to scheduled", func() {
			convey.So(normalizeState(""), convey.ShouldEqual, models.EventStateScheduled)
			convey.So(normalizeState("WEATHER_HOLD"), convey.ShouldEqual, models.EventStateScheduled)
		})
	})
}

func TestParseEventTimeSportsDB(t *testing.T) {
	convey.Convey("Given event timing fields", t, func() {
		convey.Convey("strTimestamp wins when present", func() {
			ts, err := parseEventTime(sportsdb_client.SDBEvent{
				StrTimestamp: "2026-02-01T23:30:00+00:00",
				DateEvent:    "2026-02-02",
			})
			convey.So(err, convey.ShouldBeNil)
			convey.So(ts, convey.ShouldEqual, time.Date(2026, 2, 1, 23, 30, 0, 0, time.UTC))
		})

		convey.Convey("dateEvent plus strTime is the fallback", func() {
			ts, err := parseEventTime(sportsdb_client.SDBEvent{
				DateEvent: "2026-02-01",
				StrTime:   "20:00:00",
			})
			convey.So(err, convey.ShouldBeNil)
			convey.So(ts, convey.ShouldEqual, time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC))
		})

		convey.Convey("A bare date defaults to midnight", func() {
			ts, err := parseEventTime(sportsdb_client.SDBEvent{DateEvent: "2026-02-01"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(ts.Hour(), convey.ShouldEqual, 0)
		})

		convey.Convey("No timing at all is an error", func() {
			_, err := parseEventTime(sportsdb_client.SDBEvent{IDEvent: "x"})
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestNormalizeTeamSportsDB(t *testing.T) {
	convey.Convey("Given TheSportsDB team payloads", t, func() {
		convey.Convey("Fields map onto the shared record", func() {
			team := normalizeTeam(sportsdb_client.SDBTeam{
				IDTeam:       "134862",
				StrTeam:      "Kansas City Chiefs",
				StrTeamShort: "KC",
				StrTeamBadge: "https://r2.thesportsdb.com/kc.png",
				StrColour1:   "#E31837",
			}, "nfl", "football")

			convey.So(team.Provider, convey.ShouldEqual, "sportsdb")
			convey.So(team.Name, convey.ShouldEqual, "Kansas City Chiefs")
			convey.So(team.Abbreviation, convey.ShouldEqual, "KC")
			convey.So(*team.LogoURL, convey.ShouldEqual, "https://r2.thesportsdb.com/kc.png")
			convey.So(*team.Color, convey.ShouldEqual, "e31837")
		})

		convey.Convey("Long short names are not abbreviations", func() {
			team := normalizeTeam(sportsdb_client.SDBTeam{
				IDTeam:       "1",
				StrTeam:      "Vegas Golden Knights",
				StrTeamShort: "Knights",
			}, "nhl", "hockey")
			convey.So(team.Abbreviation, convey.ShouldEqual, "")
			convey.So(team.ShortName, convey.ShouldEqual, "Knights")
		})

		convey.Convey("A missing short name falls back to the full name", func() {
			team := normalizeTeam(sportsdb_client.SDBTeam{IDTeam: "1", StrTeam: "Hershey Bears"}, "ahl", "hockey")
			convey.So(team.ShortName, convey.ShouldEqual, "Hershey Bears")
		})
	})
}

func sdbEventFixture() sportsdb_client.SDBEvent {
	return sportsdb_client.SDBEvent{
		IDEvent:      "2052711",
		StrEvent:     "Kansas City Chiefs vs Jacksonville Jaguars",
		StrSeason:    "2025",
		StrHomeTeam:  "Kansas City Chiefs",
		IDHomeTeam:   "134862",
		StrAwayTeam:  "Jacksonville Jaguars",
		IDAwayTeam:   "134919",
		IntHomeScore: strPtr("27"),
		IntAwayScore: strPtr("20"),
		StrStatus:    "FT",
		DateEvent:    "2026-01-15",
		StrTime:      "18:00:00",
		StrVenue:     "Arrowhead Stadium",
		StrCity:      "Kansas City",
		StrCountry:   "USA",
		StrTVStation: "NBC, Peacock",
	}
}

func TestNormalizeEventSportsDB(t *testing.T) {
	convey.Convey("Given event payloads", t, func() {
		convey.Convey("A finished event maps completely", func() {
			event, err := normalizeEvent(sdbEventFixture(), "nfl", "football")
			convey.So(err, convey.ShouldBeNil)

			convey.So(event.Provider, convey.ShouldEqual, "sportsdb")
			convey.So(event.Status.State, convey.ShouldEqual, models.EventStateFinal)
			convey.So(*event.HomeScore, convey.ShouldEqual, 27)
			convey.So(*event.AwayScore, convey.ShouldEqual, 20)
			convey.So(event.HomeTeam.ID, convey.ShouldEqual, "134862")
			convey.So(event.Venue.Name, convey.ShouldEqual, "Arrowhead Stadium")
			convey.So(event.Broadcasts, convey.ShouldResemble, []string{"NBC", "Peacock"})
			convey.So(*event.SeasonYear, convey.ShouldEqual, 2025)
		})

		convey.Convey("Normalizing the same payload twice is deterministic", func() {
			first, err := normalizeEvent(sdbEventFixture(), "nfl", "football")
			convey.So(err, convey.ShouldBeNil)
			second, err := normalizeEvent(sdbEventFixture(), "nfl", "football")
			convey.So(err, convey.ShouldBeNil)

			convey.So(cmp.Diff(first, second), convey.ShouldBeEmpty)
		})

		convey.Convey("A live event carries the progress clock", func() {
			wire := sdbEventFixture()
			wire.StrStatus = "Q3"
			wire.StrProgress = "Q3 05:12"

			event, err := normalizeEvent(wire, "nfl", "football")
			convey.So(err, convey.ShouldBeNil)
			convey.So(event.Status.State, convey.ShouldEqual, models.EventStateLive)
			convey.So(*event.Status.Clock, convey.ShouldEqual, "Q3 05:12")
		})

		convey.Convey("A scheduled event hides null scores", func() {
			wire := sdbEventFixture()
			wire.StrStatus = "NS"
			wire.IntHomeScore = nil
			wire.IntAwayScore = nil

			event, err := normalizeEvent(wire, "nfl", "football")
			convey.So(err, convey.ShouldBeNil)
			convey.So(event.HomeScore, convey.ShouldBeNil)
			convey.So(event.AwayScore, convey.ShouldBeNil)
		})

		convey.Convey("Split seasons keep the leading year", func() {
			wire := sdbEventFixture()
			wire.StrSeason = "2025-2026"

			event, err := normalizeEvent(wire, "nhl", "hockey")
			convey.So(err, convey.ShouldBeNil)
			convey.So(*event.SeasonYear, convey.ShouldEqual, 2025)
		})

		convey.Convey("Missing team ids reject the event", func() {
			wire := sdbEventFixture()
			wire.IDAwayTeam = ""

			_, err := normalizeEvent(wire, "nfl", "football")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestNormalizeTableEntry(t *testing.T) {
	convey.Convey("Given league table rows", t, func() {
		convey.Convey("Counts, rank and form map to stats", func() {
			stats := normalizeTableEntry(sportsdb_client.SDBTableEntry{
				IDTeam:  "134862",
				IntRank: "1",
				IntWin:  "11",
				IntLoss: "6",
				IntDraw: "0",
				StrForm: "WLWWW",
			})

			convey.So(stats.Record, convey.ShouldEqual, "11-6")
			convey.So(stats.Wins, convey.ShouldEqual, 11)
			convey.So(*stats.Rank, convey.ShouldEqual, 1)
			convey.So(*stats.Streak, convey.ShouldEqual, "W3")
			convey.So(stats.StreakCount, convey.ShouldEqual, 3)
		})

		convey.Convey("Draws extend the record format", func() {
			stats := normalizeTableEntry(sportsdb_client.SDBTableEntry{
				IntWin: "10", IntLoss: "5", IntDraw: "2",
			})
			convey.So(stats.Record, convey.ShouldEqual, "10-5-2")
			convey.So(stats.Ties, convey.ShouldEqual, 2)
		})
	})
}

func TestFormToStreak(t *testing.T) {
	convey.Convey("Form strings condense to the current streak", t, func() {
		cases := []struct {
			form   string
			streak string
			count  int
		}{
			{"WWLWW", "W2", 2},
			{"LLLLL", "L5", 5},
			{"WWWWL", "L1", 1},
			{"D", "D1", 1},
			{"", "", 0},
		}
		for _, tc := range cases {
			streak, count := formToStreak(tc.form)
			convey.So(streak, convey.ShouldEqual, tc.streak)
			convey.So(count, convey.ShouldEqual, tc.count)
		}
	})
}
