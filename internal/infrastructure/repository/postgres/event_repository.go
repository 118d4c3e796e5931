package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventRow struct {
	PublicID     string         `db:"public_id"`
	TeamPublicID string         `db:"team_public_id"`
	Title        string         `db:"title"`
	EventType    string         `db:"event_type"`
	EventDate    time.Time      `db:"event_date"`
	Location     sql.NullString `db:"location"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row eventRow) toDomain() event.Event {
	return event.Event{
		ID:        row.PublicID,
		TeamID:    row.TeamPublicID,
		Title:     row.Title,
		Type:      event.Type(row.EventType),
		Date:      row.EventDate,
		Location:  fromNullString(row.Location),
		Notes:     fromNullString(row.Notes),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

const eventColumns = `
public_id, team_public_id, title, event_type, event_date, location, notes, created_at, updated_at`

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	const query = `
SELECT ` + eventColumns + `
FROM events
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row eventRow
	if err := r.db.GetContext(ctx, &row, query, eventID); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	const query = `
SELECT ` + eventColumns + `
FROM events
WHERE team_public_id = $1
  AND deleted_at IS NULL
ORDER BY event_date`

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list events by team: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *EventRepository) Insert(ctx context.Context, item event.Event) error {
	const query = `
INSERT INTO events (public_id, team_public_id, title, event_type, event_date, location, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (public_id) DO UPDATE SET
    title = EXCLUDED.title,
    event_type = EXCLUDED.event_type,
    event_date = EXCLUDED.event_date,
    location = EXCLUDED.location,
    notes = EXCLUDED.notes,
    updated_at = EXCLUDED.updated_at,
    deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.TeamID, item.Title, string(item.Type), item.Date,
		nullString(item.Location), nullString(item.Notes),
		item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) error {
	const query = `
UPDATE events SET
    title = $2,
    event_date = $3,
    location = $4,
    notes = $5,
    updated_at = $6
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Date,
		nullString(item.Location), nullString(item.Notes), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	const query = `
UPDATE events SET deleted_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}
