package event

import "context"

// Repository exposes event persistence operations.
type Repository interface {
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Event, error)
	Insert(ctx context.Context, item Event) error
	Update(ctx context.Context, item Event) error
	Delete(ctx context.Context, eventID string) error
}
