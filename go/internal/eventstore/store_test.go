package eventstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/sportsfed/go/internal/models"
	"github.com/smartystreets/goconvey/convey"
)

// fakeDB keys rows the way the real table does, so Put/Get pairs behave
// like the Postgres round trip without a database.
type fakeDB struct {
	rows  map[string][]byte
	execs []string
}

func newFakeDB() *fakeDB {
	return &fakeDB{rows: map[string][]byte{}}
}

func rowKey(args []any) string {
	provider := args[0].(string)
	league := args[1].(string)
	date := args[2].(time.Time)
	return provider + "|" + league + "|" + date.Format("2006-01-02")
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	if len(args) == 4 {
		db.rows[rowKey(args)] = args[3].([]byte)
	}
	return pgconn.CommandTag{}, nil
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.data
	return nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	data, ok := db.rows[rowKey(args)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{data: data}
}

func TestStoreRoundTrip(t *testing.T) {
	convey.Convey("Given an event store", t, func() {
		ctx := context.Background()
		db := newFakeDB()
		store := NewStore(db)
		date := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)

		convey.Convey("An absent row reads as not stored", func() {
			events, ok, err := store.GetEvents(ctx, "espn", "nfl", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(events, convey.ShouldBeNil)
		})

		convey.Convey("Stored events read back equal", func() {
			stored := []models.Event{{
				ID:        "401",
				Provider:  "espn",
				Name:      "Jaguars at Chiefs",
				StartTime: time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC),
				League:    "nfl",
			}}
			convey.So(store.PutEvents(ctx, "espn", "nfl", date, stored), convey.ShouldBeNil)

			events, ok, err := store.GetEvents(ctx, "espn", "nfl", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(events, convey.ShouldResemble, stored)
		})

		convey.Convey("The row keys on the calendar date, not the instant", func() {
			convey.So(store.PutEvents(ctx, "espn", "nfl", date, []models.Event{{ID: "401"}}), convey.ShouldBeNil)

			sameDay := time.Date(2026, 8, 1, 2, 0, 0, 0, time.UTC)
			_, ok, err := store.GetEvents(ctx, "espn", "nfl", sameDay)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
		})

		convey.Convey("A stored empty day reads back as known-empty", func() {
			convey.So(store.PutEvents(ctx, "espn", "nfl", date, nil), convey.ShouldBeNil)

			events, ok, err := store.GetEvents(ctx, "espn", "nfl", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(events, convey.ShouldBeEmpty)
		})

		convey.Convey("Rows key per provider and league", func() {
			convey.So(store.PutEvents(ctx, "espn", "nfl", date, []models.Event{{ID: "401"}}), convey.ShouldBeNil)

			_, ok, err := store.GetEvents(ctx, "sportsdb", "nfl", date)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("Stored payloads are valid JSON arrays", func() {
			convey.So(store.PutEvents(ctx, "espn", "nfl", date, []models.Event{{ID: "401"}}), convey.ShouldBeNil)
			raw := db.rows[rowKey([]any{"espn", "nfl", dateOnly(date)})]

			var decoded []map[string]any
			convey.So(json.Unmarshal(raw, &decoded), convey.ShouldBeNil)
			convey.So(decoded, convey.ShouldHaveLength, 1)
		})
	})
}
