package club

import "context"

// Repository exposes club persistence operations. LinkTeam is idempotent:
// linking an already linked team is a no-op, not an error.
type Repository interface {
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	Insert(ctx context.Context, item Club) error
	LinkTeam(ctx context.Context, clubID, teamID string) error
	ListTeamIDs(ctx context.Context, clubID string) ([]string, error)
}
