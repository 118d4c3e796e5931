package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
)

type YearGroupRepository struct {
	db *sqlx.DB
}

func NewYearGroupRepository(db *sqlx.DB) *YearGroupRepository {
	return &YearGroupRepository{db: db}
}

type yearGroupRow struct {
	PublicID        string         `db:"public_id"`
	ClubPublicID    string         `db:"club_public_id"`
	Name            string         `db:"name"`
	AgeYear         int            `db:"age_year"`
	PlayingFormat   sql.NullString `db:"playing_format"`
	SoftPlayerLimit int            `db:"soft_player_limit"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (row yearGroupRow) toDomain() yeargroup.YearGroup {
	return yeargroup.YearGroup{
		ID:              row.PublicID,
		ClubID:          row.ClubPublicID,
		Name:            row.Name,
		AgeYear:         row.AgeYear,
		PlayingFormat:   fromNullString(row.PlayingFormat),
		SoftPlayerLimit: row.SoftPlayerLimit,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

const yearGroupColumns = `
public_id, club_public_id, name, age_year, playing_format, soft_player_limit, created_at, updated_at`

func (r *YearGroupRepository) GetByID(ctx context.Context, yearGroupID string) (yeargroup.YearGroup, bool, error) {
	const query = `
SELECT ` + yearGroupColumns + `
FROM year_groups
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row yearGroupRow
	if err := r.db.GetContext(ctx, &row, query, yearGroupID); err != nil {
		if isNotFound(err) {
			return yeargroup.YearGroup{}, false, nil
		}
		return yeargroup.YearGroup{}, false, fmt.Errorf("get year group: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *YearGroupRepository) ListByClub(ctx context.Context, clubID string) ([]yeargroup.YearGroup, error) {
	const query = `
SELECT ` + yearGroupColumns + `
FROM year_groups
WHERE club_public_id = $1
  AND deleted_at IS NULL
ORDER BY age_year DESC, name`

	var rows []yearGroupRow
	if err := r.db.SelectContext(ctx, &rows, query, clubID); err != nil {
		return nil, fmt.Errorf("list year groups by club: %w", err)
	}

	out := make([]yeargroup.YearGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *YearGroupRepository) Insert(ctx context.Context, item yeargroup.YearGroup) error {
	const query = `
INSERT INTO year_groups (public_id, club_public_id, name, age_year, playing_format, soft_player_limit, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (public_id) DO UPDATE SET
    name = EXCLUDED.name,
    age_year = EXCLUDED.age_year,
    playing_format = EXCLUDED.playing_format,
    soft_player_limit = EXCLUDED.soft_player_limit,
    updated_at = EXCLUDED.updated_at,
    deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.ClubID, item.Name, item.AgeYear,
		nullString(item.PlayingFormat), item.SoftPlayerLimit,
		item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert year group: %w", err)
	}

	return nil
}

func (r *YearGroupRepository) Update(ctx context.Context, item yeargroup.YearGroup) error {
	const query = `
UPDATE year_groups SET
    name = $2,
    age_year = $3,
    playing_format = $4,
    soft_player_limit = $5,
    updated_at = $6
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.AgeYear,
		nullString(item.PlayingFormat), item.SoftPlayerLimit, item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update year group: %w", err)
	}

	return nil
}

func (r *YearGroupRepository) Delete(ctx context.Context, yearGroupID string) error {
	const query = `
UPDATE year_groups SET deleted_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, yearGroupID); err != nil {
		return fmt.Errorf("delete year group: %w", err)
	}

	return nil
}
