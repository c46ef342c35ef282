package espn

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mcdev12/sportsfed/go/clients/espn_client"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/smartystreets/goconvey/convey"
)

// newFixtureProvider serves canned JSON per endpoint and counts requests.
func newFixtureProvider(t *testing.T, fixtures map[string]string) (*Provider, *int) {
	t.Helper()
	requests := 0
	mux := http.NewServeMux()
	for path, body := range fixtures {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, payload)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api := espn_client.NewEspnClientWithBaseURL(server.URL)
	return NewProviderWithClient(api), &requests
}

const scoreboardJSON = `{
  "events": [
    {
      "id": "401547417",
      "date": "2026-01-15T18:00Z",
      "name": "Jacksonville Jaguars at Kansas City Chiefs",
      "shortName": "JAX @ KC",
      "season": {"year": 2025, "slug": "post-season"},
      "status": {"type": {"name": "STATUS_SCHEDULED"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "home", "team": {"id": "12", "displayName": "Kansas City Chiefs", "abbreviation": "KC"}},
          {"homeAway": "away", "team": {"id": "30", "displayName": "Jacksonville Jaguars", "abbreviation": "JAX"}}
        ]
      }]
    },
    {
      "id": "401547418",
      "date": "2026-01-16T02:15Z",
      "name": "Late Game",
      "shortName": "A @ B",
      "status": {"type": {"name": "STATUS_SCHEDULED"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "home", "team": {"id": "1", "displayName": "Home Team"}},
          {"homeAway": "away", "team": {"id": "2", "displayName": "Away Team"}}
        ]
      }]
    }
  ]
}`

const teamsJSON = `{
  "sports": [{"leagues": [{"teams": [
    {"team": {"id": "30", "displayName": "Jacksonville Jaguars", "name": "Jaguars", "abbreviation": "JAX"}},
    {"team": {"id": "12", "displayName": "Kansas City Chiefs", "name": "Chiefs", "abbreviation": "KC", "logos": [{"href": "https://a.espncdn.com/kc.png"}]}}
  ]}]}]
}`

const standingsJSON = `{
  "children": [
    {
      "name": "American Football Conference",
      "abbreviation": "AFC",
      "standings": {"entries": []},
      "children": [{
        "name": "AFC West",
        "standings": {"entries": [{
          "team": {"id": "12", "displayName": "Kansas City Chiefs"},
          "stats": [
            {"name": "overall", "displayValue": "11-6"},
            {"name": "wins", "value": 11},
            {"name": "losses", "value": 6}
          ]
        }]}
      }]
    },
    {
      "name": "National Football Conference",
      "abbreviation": "NFC",
      "standings": {"entries": [{
        "team": {"id": "30", "displayName": "Jacksonville Jaguars"},
        "stats": [{"name": "overall", "displayValue": "9-8"}]
      }]}
    }
  ]
}`

func TestGetEvents(t *testing.T) {
	convey.Convey("Given a scoreboard fixture with a late spillover game", t, func() {
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/site/v2/sports/football/nfl/scoreboard": scoreboardJSON,
		})
		date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

		convey.Convey("Only events on the requested calendar date survive", func() {
			events, err := provider.GetEvents(context.Background(), "nfl", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(events, convey.ShouldHaveLength, 1)
			convey.So(events[0].ID, convey.ShouldEqual, "401547417")
		})

		convey.Convey("An unsupported league short-circuits without a request", func() {
			isolated, requests := newFixtureProvider(t, map[string]string{
				"/apis/site/v2/sports/football/nfl/scoreboard": scoreboardJSON,
			})
			events, err := isolated.GetEvents(context.Background(), "cricket", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(events, convey.ShouldBeEmpty)
			convey.So(*requests, convey.ShouldEqual, 0)
		})
	})
}

func TestGetTeamSchedule(t *testing.T) {
	convey.Convey("Given a schedule fixture spanning past and future", t, func() {
		now := time.Now().UTC()
		stamp := func(d time.Duration) string {
			return now.Add(d).Format("2006-01-02T15:04Z")
		}
		event := func(id, date string) string {
			return fmt.Sprintf(`{
              "id": %q, "date": %q, "name": "Game %s", "shortName": "G%s",
              "status": {"type": {"name": "STATUS_SCHEDULED"}},
              "competitions": [{"competitors": [
                {"homeAway": "home", "team": {"id": "12", "displayName": "Kansas City Chiefs"}},
                {"homeAway": "away", "team": {"id": "30", "displayName": "Jacksonville Jaguars"}}
              ]}]
            }`, id, date, id, id)
		}
		scheduleJSON := fmt.Sprintf(`{"events": [%s, %s, %s, %s]}`,
			event("past", stamp(-48*time.Hour)),
			event("later", stamp(10*24*time.Hour)),
			event("soon", stamp(72*time.Hour)),
			event("beyond", stamp(40*24*time.Hour)),
		)
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/site/v2/sports/football/nfl/teams/12/schedule": scheduleJSON,
		})

		convey.Convey("Past and beyond-horizon events are dropped, the rest sorted", func() {
			events, err := provider.GetTeamSchedule(context.Background(), "12", "nfl", 30)
			convey.So(err, convey.ShouldBeNil)
			convey.So(events, convey.ShouldHaveLength, 2)
			convey.So(events[0].ID, convey.ShouldEqual, "soon")
			convey.So(events[1].ID, convey.ShouldEqual, "later")
		})
	})
}

func TestGetTeam(t *testing.T) {
	convey.Convey("Given team lookups", t, func() {
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/site/v2/sports/football/nfl/teams/12": `{"team": {"id": "12", "displayName": "Kansas City Chiefs", "name": "Chiefs", "abbreviation": "KC"}}`,
			"/apis/site/v2/sports/football/nfl/teams/99": `{"team": {}}`,
		})

		convey.Convey("A known id maps to a normalized team", func() {
			team, err := provider.GetTeam(context.Background(), "12", "nfl")
			convey.So(err, convey.ShouldBeNil)

			expected := &models.Team{
				ID:           "12",
				Provider:     "espn",
				Name:         "Kansas City Chiefs",
				ShortName:    "Chiefs",
				Abbreviation: "KC",
				League:       "nfl",
				Sport:        "football",
			}
			convey.So(cmp.Diff(expected, team), convey.ShouldBeEmpty)
		})

		convey.Convey("An empty payload means not found, not an error", func() {
			team, err := provider.GetTeam(context.Background(), "99", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(team, convey.ShouldBeNil)
		})
	})
}

func TestGetLeagueTeams(t *testing.T) {
	convey.Convey("Given the nested teams listing", t, func() {
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/site/v2/sports/football/nfl/teams": teamsJSON,
		})

		convey.Convey("Teams come back flattened and sorted by name", func() {
			teams, err := provider.GetLeagueTeams(context.Background(), "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(teams, convey.ShouldHaveLength, 2)
			convey.So(teams[0].Name, convey.ShouldEqual, "Jacksonville Jaguars")
			convey.So(teams[1].Name, convey.ShouldEqual, "Kansas City Chiefs")
			convey.So(*teams[1].LogoURL, convey.ShouldEqual, "https://a.espncdn.com/kc.png")
		})
	})
}

func TestGetTeamStats(t *testing.T) {
	convey.Convey("Given grouped standings", t, func() {
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/v2/sports/football/nfl/standings": standingsJSON,
		})

		convey.Convey("A team nested in a division carries conference and division", func() {
			stats, err := provider.GetTeamStats(context.Background(), "12", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(stats, convey.ShouldNotBeNil)
			convey.So(stats.Record, convey.ShouldEqual, "11-6")
			convey.So(*stats.Conference, convey.ShouldEqual, "American Football Conference")
			convey.So(*stats.Division, convey.ShouldEqual, "AFC West")
		})

		convey.Convey("A team directly under a conference has no division", func() {
			stats, err := provider.GetTeamStats(context.Background(), "30", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(stats, convey.ShouldNotBeNil)
			convey.So(*stats.Conference, convey.ShouldEqual, "National Football Conference")
			convey.So(stats.Division, convey.ShouldBeNil)
		})

		convey.Convey("An unknown team yields nil without error", func() {
			stats, err := provider.GetTeamStats(context.Background(), "777", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(stats, convey.ShouldBeNil)
		})
	})
}

func TestGetTeamsByConference(t *testing.T) {
	convey.Convey("Given grouped standings", t, func() {
		provider, requests := newFixtureProvider(t, map[string]string{
			"/apis/v2/sports/football/nfl/standings": standingsJSON,
		})

		convey.Convey("Conference groups flatten their division teams", func() {
			conferences, err := provider.GetTeamsByConference(context.Background(), "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(conferences, convey.ShouldHaveLength, 2)
			convey.So(conferences["American Football Conference"], convey.ShouldHaveLength, 1)
			convey.So(conferences["American Football Conference"][0].Name, convey.ShouldEqual, "Kansas City Chiefs")
		})

		convey.Convey("Leagues without conference structure return empty without a request", func() {
			conferences, err := provider.GetTeamsByConference(context.Background(), "mls")
			convey.So(err, convey.ShouldBeNil)
			convey.So(conferences, convey.ShouldBeEmpty)
			convey.So(*requests, convey.ShouldEqual, 0)
		})
	})
}

func TestSearchTeams(t *testing.T) {
	convey.Convey("Given a league roster and a search query", t, func() {
		provider, _ := newFixtureProvider(t, map[string]string{
			"/apis/site/v2/sports/football/nfl/teams": teamsJSON,
		})

		convey.Convey("A mascot query ranks its team first", func() {
			teams, err := provider.SearchTeams(context.Background(), "chiefs", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(teams, convey.ShouldNotBeEmpty)
			convey.So(teams[0].ID, convey.ShouldEqual, "12")
		})

		convey.Convey("A non-matching query returns an empty slice", func() {
			teams, err := provider.SearchTeams(context.Background(), "zzzzzz", "nfl")
			convey.So(err, convey.ShouldBeNil)
			convey.So(teams, convey.ShouldBeEmpty)
		})
	})
}
