package yeargroup

import "context"

// Repository exposes year group persistence operations.
type Repository interface {
	GetByID(ctx context.Context, yearGroupID string) (YearGroup, bool, error)
	ListByClub(ctx context.Context, clubID string) ([]YearGroup, error)
	Insert(ctx context.Context, item YearGroup) error
	Update(ctx context.Context, item YearGroup) error
	Delete(ctx context.Context, yearGroupID string) error
}
