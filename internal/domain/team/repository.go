package team

import "context"

// Repository exposes team persistence operations.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByClub(ctx context.Context, clubID string) ([]Team, error)
	ListByYearGroup(ctx context.Context, yearGroupID string) ([]Team, error)
	Insert(ctx context.Context, items []Team) error
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
}
