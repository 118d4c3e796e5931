package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/club"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	const clubQuery = `
SELECT public_id, name
FROM clubs
WHERE public_id = $1
  AND deleted_at IS NULL`

	var clubRow struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
	}
	if err := r.db.GetContext(ctx, &clubRow, clubQuery, clubID); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club: %w", err)
	}

	teamIDs, err := r.ListTeamIDs(ctx, clubID)
	if err != nil {
		return club.Club{}, false, err
	}

	return club.Club{
		ID:      clubRow.PublicID,
		Name:    clubRow.Name,
		TeamIDs: teamIDs,
	}, true, nil
}

func (r *ClubRepository) Insert(ctx context.Context, item club.Club) error {
	const query = `
INSERT INTO clubs (public_id, name)
VALUES ($1, $2)
ON CONFLICT (public_id) DO UPDATE SET
    name = EXCLUDED.name,
    deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Name); err != nil {
		return fmt.Errorf("insert club: %w", err)
	}

	return nil
}

func (r *ClubRepository) LinkTeam(ctx context.Context, clubID, teamID string) error {
	const query = `
INSERT INTO club_teams (club_public_id, team_public_id)
VALUES ($1, $2)
ON CONFLICT (club_public_id, team_public_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, clubID, teamID); err != nil {
		return fmt.Errorf("link team to club: %w", err)
	}

	return nil
}

func (r *ClubRepository) ListTeamIDs(ctx context.Context, clubID string) ([]string, error) {
	const query = `
SELECT team_public_id
FROM club_teams
WHERE club_public_id = $1
ORDER BY id`

	var teamIDs []string
	if err := r.db.SelectContext(ctx, &teamIDs, query, clubID); err != nil {
		return nil, fmt.Errorf("list club team ids: %w", err)
	}

	return teamIDs, nil
}
