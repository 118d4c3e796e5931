package squad

import "context"

// Repository exposes event-squad persistence operations.
type Repository interface {
	GetByEventAndTeam(ctx context.Context, eventID, teamID string) (Squad, bool, error)
	Upsert(ctx context.Context, item Squad) error
	Delete(ctx context.Context, eventID, teamID string) error
}
