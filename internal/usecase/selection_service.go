package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
	"github.com/grassrootshq/teamdesk/internal/domain/squad"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

type SelectionService struct {
	teamRepo      team.Repository
	squadRepo     squad.Repository
	selectionRepo selection.Repository
	logger        *logging.Logger
	now           func() time.Time
}

func NewSelectionService(
	teamRepo team.Repository,
	squadRepo squad.Repository,
	selectionRepo selection.Repository,
	logger *logging.Logger,
) *SelectionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SelectionService{
		teamRepo:      teamRepo,
		squadRepo:     squadRepo,
		selectionRepo: selectionRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// SaveResult carries the persisted selection plus any cross-team conflict
// warnings. Conflicts never block the save; planners resolve them by hand.
type SaveResult struct {
	Selection selection.Selection
	Conflicts map[string][]string
}

// Save validates and upserts one period/team-sheet selection. Every selected
// player must belong to the event squad, and nobody may appear twice on the
// same sheet.
func (s *SelectionService) Save(ctx context.Context, sel selection.Selection) (SaveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Save")
	defer span.End()

	sel.EventID = strings.TrimSpace(sel.EventID)
	sel.TeamID = strings.TrimSpace(sel.TeamID)
	if err := sel.Validate(); err != nil {
		return SaveResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sq, exists, err := s.squadRepo.GetByEventAndTeam(ctx, sel.EventID, sel.TeamID)
	if err != nil {
		return SaveResult{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return SaveResult{}, fmt.Errorf("%w: no squad for event=%s team=%s", ErrPolicyViolation, sel.EventID, sel.TeamID)
	}
	for _, pp := range sel.PlayerPositions {
		if !sq.Contains(pp.PlayerID) {
			return SaveResult{}, fmt.Errorf("%w: player %s is not in the event squad", ErrPolicyViolation, pp.PlayerID)
		}
	}
	for _, id := range sel.Substitutes {
		if !sq.Contains(id) {
			return SaveResult{}, fmt.Errorf("%w: substitute %s is not in the event squad", ErrPolicyViolation, id)
		}
	}

	sel.UpdatedAt = s.now().UTC()
	if err := s.selectionRepo.Upsert(ctx, sel); err != nil {
		return SaveResult{}, fmt.Errorf("save selection: %w", err)
	}

	conflicts, err := s.conflictsFor(ctx, sel)
	if err != nil {
		return SaveResult{}, err
	}
	if len(conflicts) > 0 {
		s.logger.WarnContext(ctx, "selection saved with cross-team conflicts",
			"event_id", sel.EventID, "team_id", sel.TeamID, "conflicted_players", len(conflicts))
	}

	return SaveResult{Selection: sel, Conflicts: conflicts}, nil
}

// Get returns one stored selection sheet.
func (s *SelectionService) Get(ctx context.Context, eventID, teamID string, period, teamNumber int) (selection.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Get")
	defer span.End()

	sel, exists, err := s.selectionRepo.Get(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		return selection.Selection{}, fmt.Errorf("get selection: %w", err)
	}
	if !exists {
		return selection.Selection{}, fmt.Errorf("%w: selection event=%s team=%s period=%d", ErrNotFound, eventID, teamID, period)
	}

	return sel, nil
}

// PositionMap projects a selection onto its formation. When the selection
// names no formation the team's game format picks the default layout.
func (s *SelectionService) PositionMap(ctx context.Context, eventID, teamID string, period, teamNumber int) (selection.PositionMap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.PositionMap")
	defer span.End()

	sel, exists, err := s.selectionRepo.Get(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		return selection.PositionMap{}, fmt.Errorf("get selection: %w", err)
	}
	if !exists {
		return selection.PositionMap{}, fmt.Errorf("%w: selection event=%s team=%s period=%d", ErrNotFound, eventID, teamID, period)
	}

	tm, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return selection.PositionMap{}, fmt.Errorf("get team by id: %w", err)
	}
	if !found {
		return selection.PositionMap{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	ids := make([]string, 0, len(sel.PlayerPositions))
	for _, pp := range sel.PlayerPositions {
		ids = append(ids, pp.PlayerID)
	}

	return selection.MapToPositions(sel.FormationID, tm.GameFormat, ids), nil
}

// Conflicts reports, per player on the given sheet, every other sheet of the
// same event that also fields them.
func (s *SelectionService) Conflicts(ctx context.Context, eventID, teamID string, period, teamNumber int) (map[string][]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.Conflicts")
	defer span.End()

	sel, exists, err := s.selectionRepo.Get(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: selection event=%s team=%s period=%d", ErrNotFound, eventID, teamID, period)
	}

	return s.conflictsFor(ctx, sel)
}

func (s *SelectionService) conflictsFor(ctx context.Context, sel selection.Selection) (map[string][]string, error) {
	others, err := s.selectionRepo.ListByEvent(ctx, sel.EventID)
	if err != nil {
		return nil, fmt.Errorf("list event selections: %w", err)
	}

	conflicts := make(map[string][]string)
	for _, pp := range sel.PlayerPositions {
		if labels := selection.FindConflicts(pp.PlayerID, others, sel.Period, sel.TeamNumber); len(labels) > 0 {
			conflicts[pp.PlayerID] = labels
		}
	}
	for _, id := range sel.Substitutes {
		if labels := selection.FindConflicts(id, others, sel.Period, sel.TeamNumber); len(labels) > 0 {
			conflicts[id] = labels
		}
	}
	if len(conflicts) == 0 {
		return nil, nil
	}

	return conflicts, nil
}
