package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
)

type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

type selectionRow struct {
	PublicID      string         `db:"public_id"`
	EventPublicID string         `db:"event_public_id"`
	TeamPublicID  string         `db:"team_public_id"`
	Period        int            `db:"period"`
	TeamNumber    int            `db:"team_number"`
	FormationID   sql.NullString `db:"formation_id"`
	CaptainID     sql.NullString `db:"captain_id"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *SelectionRepository) Get(ctx context.Context, eventID, teamID string, period, teamNumber int) (selection.Selection, bool, error) {
	const query = `
SELECT public_id, event_public_id, team_public_id, period, team_number, formation_id, captain_id, updated_at
FROM selections
WHERE event_public_id = $1
  AND team_public_id = $2
  AND period = $3
  AND team_number = $4`

	var row selectionRow
	if err := r.db.GetContext(ctx, &row, query, eventID, teamID, period, teamNumber); err != nil {
		if isNotFound(err) {
			return selection.Selection{}, false, nil
		}
		return selection.Selection{}, false, fmt.Errorf("get selection: %w", err)
	}

	return r.hydrate(ctx, row)
}

func (r *SelectionRepository) ListByEvent(ctx context.Context, eventID string) ([]selection.Selection, error) {
	const query = `
SELECT public_id, event_public_id, team_public_id, period, team_number, formation_id, captain_id, updated_at
FROM selections
WHERE event_public_id = $1
ORDER BY period, team_number`

	var rows []selectionRow
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("list selections by event: %w", err)
	}

	out := make([]selection.Selection, 0, len(rows))
	for _, row := range rows {
		sel, _, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}

	return out, nil
}

func (r *SelectionRepository) hydrate(ctx context.Context, row selectionRow) (selection.Selection, bool, error) {
	const playersQuery = `
SELECT player_public_id, position, is_substitute
FROM selection_players
WHERE selection_public_id = $1
ORDER BY ord`

	var playerRows []struct {
		PlayerPublicID string         `db:"player_public_id"`
		Position       sql.NullString `db:"position"`
		IsSubstitute   bool           `db:"is_substitute"`
	}
	if err := r.db.SelectContext(ctx, &playerRows, playersQuery, row.PublicID); err != nil {
		return selection.Selection{}, false, fmt.Errorf("list selection players: %w", err)
	}

	var positions []selection.PlayerPosition
	var substitutes []string
	for _, p := range playerRows {
		if p.IsSubstitute {
			substitutes = append(substitutes, p.PlayerPublicID)
			continue
		}
		positions = append(positions, selection.PlayerPosition{
			PlayerID: p.PlayerPublicID,
			Position: fromNullString(p.Position),
		})
	}

	const staffQuery = `
SELECT user_id, role
FROM selection_staff
WHERE selection_public_id = $1
ORDER BY id`

	var staffRows []struct {
		UserID string `db:"user_id"`
		Role   string `db:"role"`
	}
	if err := r.db.SelectContext(ctx, &staffRows, staffQuery, row.PublicID); err != nil {
		return selection.Selection{}, false, fmt.Errorf("list selection staff: %w", err)
	}

	var staff []selection.StaffAssignment
	for _, s := range staffRows {
		staff = append(staff, selection.StaffAssignment{UserID: s.UserID, Role: s.Role})
	}

	return selection.Selection{
		ID:              row.PublicID,
		EventID:         row.EventPublicID,
		TeamID:          row.TeamPublicID,
		Period:          row.Period,
		TeamNumber:      row.TeamNumber,
		FormationID:     fromNullString(row.FormationID),
		PlayerPositions: positions,
		Substitutes:     substitutes,
		CaptainID:       fromNullString(row.CaptainID),
		Staff:           staff,
		UpdatedAt:       row.UpdatedAt,
	}, true, nil
}

// Upsert writes the selection header and replaces its player and staff rows
// in one transaction.
func (r *SelectionRepository) Upsert(ctx context.Context, item selection.Selection) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for selection upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertQuery = `
INSERT INTO selections (public_id, event_public_id, team_public_id, period, team_number, formation_id, captain_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (event_public_id, team_public_id, period, team_number) DO UPDATE SET
    formation_id = EXCLUDED.formation_id,
    captain_id = EXCLUDED.captain_id,
    updated_at = EXCLUDED.updated_at
RETURNING public_id`

	publicID := item.ID
	if publicID == "" {
		publicID = fmt.Sprintf("sel-%s-%s-%d-%d", item.EventID, item.TeamID, item.Period, item.TeamNumber)
	}
	if err := tx.GetContext(ctx, &publicID, upsertQuery,
		publicID, item.EventID, item.TeamID, item.Period, item.TeamNumber,
		nullString(item.FormationID), nullString(item.CaptainID), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert selection: %w", err)
	}

	const clearPlayersQuery = `DELETE FROM selection_players WHERE selection_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearPlayersQuery, publicID); err != nil {
		return fmt.Errorf("clear selection players: %w", err)
	}

	const playerQuery = `
INSERT INTO selection_players (selection_public_id, player_public_id, position, is_substitute, ord)
VALUES ($1, $2, $3, $4, $5)`

	ord := 0
	for _, pp := range item.PlayerPositions {
		if _, err := tx.ExecContext(ctx, playerQuery, publicID, pp.PlayerID, nullString(pp.Position), false, ord); err != nil {
			return fmt.Errorf("insert selection player %s: %w", pp.PlayerID, err)
		}
		ord++
	}
	for _, playerID := range item.Substitutes {
		if _, err := tx.ExecContext(ctx, playerQuery, publicID, playerID, nil, true, ord); err != nil {
			return fmt.Errorf("insert selection substitute %s: %w", playerID, err)
		}
		ord++
	}

	const clearStaffQuery = `DELETE FROM selection_staff WHERE selection_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearStaffQuery, publicID); err != nil {
		return fmt.Errorf("clear selection staff: %w", err)
	}

	const staffQuery = `
INSERT INTO selection_staff (selection_public_id, user_id, role)
VALUES ($1, $2, $3)`

	for _, s := range item.Staff {
		if _, err := tx.ExecContext(ctx, staffQuery, publicID, s.UserID, s.Role); err != nil {
			return fmt.Errorf("insert selection staff %s: %w", s.UserID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit selection upsert: %w", err)
	}

	return nil
}

func (r *SelectionRepository) Delete(ctx context.Context, eventID, teamID string, period, teamNumber int) error {
	const lookupQuery = `
SELECT public_id
FROM selections
WHERE event_public_id = $1
  AND team_public_id = $2
  AND period = $3
  AND team_number = $4`

	var publicID string
	if err := r.db.GetContext(ctx, &publicID, lookupQuery, eventID, teamID, period, teamNumber); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("lookup selection: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for selection delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, query := range []string{
		`DELETE FROM selection_players WHERE selection_public_id = $1`,
		`DELETE FROM selection_staff WHERE selection_public_id = $1`,
		`DELETE FROM selections WHERE public_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, query, publicID); err != nil {
			return fmt.Errorf("delete selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit selection delete: %w", err)
	}

	return nil
}
