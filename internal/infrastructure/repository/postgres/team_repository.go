package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type teamRow struct {
	PublicID          string         `db:"public_id"`
	ClubPublicID      string         `db:"club_public_id"`
	Name              string         `db:"name"`
	AgeGroup          sql.NullString `db:"age_group"`
	GameFormat        string         `db:"game_format"`
	YearGroupPublicID sql.NullString `db:"year_group_public_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (row teamRow) toDomain() team.Team {
	return team.Team{
		ID:          row.PublicID,
		ClubID:      row.ClubPublicID,
		Name:        row.Name,
		AgeGroup:    fromNullString(row.AgeGroup),
		GameFormat:  team.GameFormat(row.GameFormat),
		YearGroupID: fromNullString(row.YearGroupPublicID),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

const teamColumns = `
public_id, club_public_id, name, age_group, game_format, year_group_public_id, created_at, updated_at`

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row teamRow
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListByClub(ctx context.Context, clubID string) ([]team.Team, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams
WHERE club_public_id = $1
  AND deleted_at IS NULL
ORDER BY name`

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query, clubID); err != nil {
		return nil, fmt.Errorf("list teams by club: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) ListByYearGroup(ctx context.Context, yearGroupID string) ([]team.Team, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams
WHERE year_group_public_id = $1
  AND deleted_at IS NULL
ORDER BY name`

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query, yearGroupID); err != nil {
		return nil, fmt.Errorf("list teams by year group: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Insert(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO teams (public_id, club_public_id, name, age_group, game_format, year_group_public_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (public_id) DO UPDATE SET
    name = EXCLUDED.name,
    age_group = EXCLUDED.age_group,
    game_format = EXCLUDED.game_format,
    year_group_public_id = EXCLUDED.year_group_public_id,
    updated_at = EXCLUDED.updated_at,
    deleted_at = NULL`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.ClubID, item.Name, nullString(item.AgeGroup),
			string(item.GameFormat), nullString(item.YearGroupID),
			item.CreatedAt, item.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert team %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team insert: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	const query = `
UPDATE teams SET
    name = $2,
    age_group = $3,
    game_format = $4,
    year_group_public_id = $5,
    updated_at = $6
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, nullString(item.AgeGroup),
		string(item.GameFormat), nullString(item.YearGroupID), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	const query = `
UPDATE teams SET deleted_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}
