package selection

import "context"

// Repository exposes selection persistence operations.
type Repository interface {
	Get(ctx context.Context, eventID, teamID string, period, teamNumber int) (Selection, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]Selection, error)
	Upsert(ctx context.Context, item Selection) error
	Delete(ctx context.Context, eventID, teamID string, period, teamNumber int) error
}
