// Package eventstore persists finished-day event lists in Postgres. Past
// events never change, so one row per (provider, league, date) serves every
// later query for that day without touching the upstream API.
package eventstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/sportsfed/go/internal/models"
)

// DB defines what the store needs from the database layer. *pgxpool.Pool
// satisfies it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements past-event persistence on Postgres.
type Store struct {
	db DB
}

// NewStore creates a new event store.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS past_events (
    provider   TEXT        NOT NULL,
    league     TEXT        NOT NULL,
    event_date DATE        NOT NULL,
    events     JSONB       NOT NULL,
    stored_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (provider, league, event_date)
)`

// Migrate creates the backing table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate event store: %w", err)
	}
	return nil
}

// GetEvents loads the stored events for one provider, league and calendar
// date. The second return distinguishes "no row" from a stored empty day:
// an empty list with ok=true means the provider reported no events.
func (s *Store) GetEvents(ctx context.Context, provider, league string, date time.Time) ([]models.Event, bool, error) {
	const query = `
		SELECT events FROM past_events
		WHERE provider = $1 AND league = $2 AND event_date = $3`

	var raw []byte
	err := s.db.QueryRow(ctx, query, provider, league, dateOnly(date)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get stored events: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("failed to decode stored events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, true, nil
}

// PutEvents stores the events for one provider, league and date, replacing
// any earlier row.
func (s *Store) PutEvents(ctx context.Context, provider, league string, date time.Time, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	const query = `
		INSERT INTO past_events (provider, league, event_date, events, stored_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (provider, league, event_date)
		DO UPDATE SET events = EXCLUDED.events, stored_at = EXCLUDED.stored_at`

	if _, err := s.db.Exec(ctx, query, provider, league, dateOnly(date), raw); err != nil {
		return fmt.Errorf("failed to store events: %w", err)
	}
	return nil
}

// CleanupOldEntries deletes rows for dates older than the retention window
// and returns how many were removed.
func (s *Store) CleanupOldEntries(ctx context.Context, retention time.Duration) (int64, error) {
	const query = `DELETE FROM past_events WHERE event_date < $1`

	cutoff := dateOnly(time.Now().Add(-retention))
	tag, err := s.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up event store: %w", err)
	}
	return tag.RowsAffected(), nil
}

// dateOnly strips the time of day so rows key on the calendar date in the
// caller's location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
