package availability

import "context"

// Repository exposes availability persistence operations.
type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Upsert(ctx context.Context, record Record) error
	Delete(ctx context.Context, eventID, userID string, role Role) error
}
