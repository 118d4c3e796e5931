package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type playerRow struct {
	PublicID     string         `db:"public_id"`
	TeamPublicID string         `db:"team_public_id"`
	Name         string         `db:"name"`
	SquadNumber  int            `db:"squad_number"`
	Subscription sql.NullString `db:"subscription"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row playerRow) toDomain() player.Player {
	return player.Player{
		ID:           row.PublicID,
		TeamID:       row.TeamPublicID,
		Name:         row.Name,
		SquadNumber:  row.SquadNumber,
		Subscription: player.SubscriptionType(fromNullString(row.Subscription)),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

const playerColumns = `
public_id, team_public_id, name, squad_number, subscription, created_at, updated_at`

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row playerRow
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT `+playerColumns+`
FROM players
WHERE public_id IN (?)
  AND deleted_at IS NULL`, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("bind players by ids query: %w", err)
	}

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE team_public_id = $1
  AND deleted_at IS NULL
ORDER BY squad_number`

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	const query = `
INSERT INTO players (public_id, team_public_id, name, squad_number, subscription, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (public_id) DO UPDATE SET
    team_public_id = EXCLUDED.team_public_id,
    name = EXCLUDED.name,
    squad_number = EXCLUDED.squad_number,
    subscription = EXCLUDED.subscription,
    updated_at = EXCLUDED.updated_at,
    deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.TeamID, item.Name, item.SquadNumber,
		nullString(string(item.Subscription)), item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	const query = `
UPDATE players SET
    team_public_id = $2,
    name = $3,
    squad_number = $4,
    subscription = $5,
    updated_at = $6
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.TeamID, item.Name, item.SquadNumber,
		nullString(string(item.Subscription)), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) UpdateTeam(ctx context.Context, playerID, teamID string) error {
	const query = `
UPDATE players SET
    team_public_id = $2,
    updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, playerID, teamID); err != nil {
		return fmt.Errorf("update player team: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	const query = `
UPDATE players SET deleted_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
