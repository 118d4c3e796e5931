package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/squad"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) GetByEventAndTeam(ctx context.Context, eventID, teamID string) (squad.Squad, bool, error) {
	const squadQuery = `
SELECT event_public_id, team_public_id, captain_id, vice_captain_id, updated_at
FROM event_squads
WHERE event_public_id = $1
  AND team_public_id = $2`

	var squadRow struct {
		EventPublicID string         `db:"event_public_id"`
		TeamPublicID  string         `db:"team_public_id"`
		CaptainID     sql.NullString `db:"captain_id"`
		ViceCaptainID sql.NullString `db:"vice_captain_id"`
		UpdatedAt     time.Time      `db:"updated_at"`
	}
	if err := r.db.GetContext(ctx, &squadRow, squadQuery, eventID, teamID); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, fmt.Errorf("get event squad: %w", err)
	}

	const membersQuery = `
SELECT player_public_id
FROM event_squad_members
WHERE event_public_id = $1
  AND team_public_id = $2
ORDER BY ord`

	var playerIDs []string
	if err := r.db.SelectContext(ctx, &playerIDs, membersQuery, eventID, teamID); err != nil {
		return squad.Squad{}, false, fmt.Errorf("list event squad members: %w", err)
	}

	return squad.Squad{
		EventID:       squadRow.EventPublicID,
		TeamID:        squadRow.TeamPublicID,
		PlayerIDs:     playerIDs,
		CaptainID:     fromNullString(squadRow.CaptainID),
		ViceCaptainID: fromNullString(squadRow.ViceCaptainID),
		UpdatedAt:     squadRow.UpdatedAt,
	}, true, nil
}

// Upsert replaces the whole squad in one transaction: the member list is
// deleted and reinserted so order and captaincy always land together.
func (r *SquadRepository) Upsert(ctx context.Context, item squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertQuery = `
INSERT INTO event_squads (event_public_id, team_public_id, captain_id, vice_captain_id, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (event_public_id, team_public_id) DO UPDATE SET
    captain_id = EXCLUDED.captain_id,
    vice_captain_id = EXCLUDED.vice_captain_id,
    updated_at = EXCLUDED.updated_at`

	if _, err := tx.ExecContext(ctx, upsertQuery,
		item.EventID, item.TeamID,
		nullString(item.CaptainID), nullString(item.ViceCaptainID), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert event squad: %w", err)
	}

	const clearQuery = `
DELETE FROM event_squad_members
WHERE event_public_id = $1
  AND team_public_id = $2`

	if _, err := tx.ExecContext(ctx, clearQuery, item.EventID, item.TeamID); err != nil {
		return fmt.Errorf("clear event squad members: %w", err)
	}

	const memberQuery = `
INSERT INTO event_squad_members (event_public_id, team_public_id, player_public_id, ord)
VALUES ($1, $2, $3, $4)`

	for i, playerID := range item.PlayerIDs {
		if _, err := tx.ExecContext(ctx, memberQuery, item.EventID, item.TeamID, playerID, i); err != nil {
			return fmt.Errorf("insert event squad member %s: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad upsert: %w", err)
	}

	return nil
}

func (r *SquadRepository) Delete(ctx context.Context, eventID, teamID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const membersQuery = `
DELETE FROM event_squad_members
WHERE event_public_id = $1
  AND team_public_id = $2`

	if _, err := tx.ExecContext(ctx, membersQuery, eventID, teamID); err != nil {
		return fmt.Errorf("delete event squad members: %w", err)
	}

	const squadQuery = `
DELETE FROM event_squads
WHERE event_public_id = $1
  AND team_public_id = $2`

	if _, err := tx.ExecContext(ctx, squadQuery, eventID, teamID); err != nil {
		return fmt.Errorf("delete event squad: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad delete: %w", err)
	}

	return nil
}
