package player

import "context"

// Repository exposes player persistence operations.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Insert(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	UpdateTeam(ctx context.Context, playerID, teamID string) error
	Delete(ctx context.Context, playerID string) error
}
