package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
)

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilityRow struct {
	EventPublicID string    `db:"event_public_id"`
	UserID        string    `db:"user_id"`
	Role          string    `db:"role"`
	Status        string    `db:"status"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row availabilityRow) toDomain() availability.Record {
	return availability.Record{
		EventID:   row.EventPublicID,
		UserID:    row.UserID,
		Role:      availability.Role(row.Role),
		Status:    availability.Status(row.Status),
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *AvailabilityRepository) ListByEvent(ctx context.Context, eventID string) ([]availability.Record, error) {
	const query = `
SELECT event_public_id, user_id, role, status, updated_at
FROM availability_records
WHERE event_public_id = $1
ORDER BY user_id, role`

	var rows []availabilityRow
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("list availability by event: %w", err)
	}

	out := make([]availability.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID string) ([]availability.Record, error) {
	const query = `
SELECT event_public_id, user_id, role, status, updated_at
FROM availability_records
WHERE user_id = $1
ORDER BY event_public_id, role`

	var rows []availabilityRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list availability by user: %w", err)
	}

	out := make([]availability.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, record availability.Record) error {
	const query = `
INSERT INTO availability_records (event_public_id, user_id, role, status, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (event_public_id, user_id, role) DO UPDATE SET
    status = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		record.EventID, record.UserID, string(record.Role), string(record.Status), record.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert availability record: %w", err)
	}

	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, eventID, userID string, role availability.Role) error {
	const query = `
DELETE FROM availability_records
WHERE event_public_id = $1
  AND user_id = $2
  AND role = $3`

	if _, err := r.db.ExecContext(ctx, query, eventID, userID, string(role)); err != nil {
		return fmt.Errorf("delete availability record: %w", err)
	}

	return nil
}
