package usecase

import (
	"errors"
	"testing"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
	"github.com/grassrootshq/teamdesk/internal/domain/squad"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

func newSelectionFixture(squads []squad.Squad) (*SelectionService, *memory.SelectionRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	squadRepo := memory.NewSquadRepository(squads)
	selectionRepo := memory.NewSelectionRepository(nil)

	return NewSelectionService(teamRepo, squadRepo, selectionRepo, logging.NewNop()), selectionRepo
}

func TestSelectionService_Save_RequiresSquadMembership(t *testing.T) {
	service, _ := newSelectionFixture([]squad.Squad{{
		EventID:   "ev-lions-match-01",
		TeamID:    memory.TeamIDUnder10Lions,
		PlayerIDs: []string{"pl-lion-01", "pl-lion-02"},
	}})

	_, err := service.Save(t.Context(), selection.Selection{
		EventID:    "ev-lions-match-01",
		TeamID:     memory.TeamIDUnder10Lions,
		Period:     1,
		TeamNumber: 1,
		PlayerPositions: []selection.PlayerPosition{
			{PlayerID: "pl-lion-01", Position: "GK"},
			{PlayerID: "pl-lion-09", Position: "ST"},
		},
	})
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("expected ErrPolicyViolation for non-member, got %v", err)
	}

	_, err = service.Save(t.Context(), selection.Selection{
		EventID:     "ev-lions-match-01",
		TeamID:      memory.TeamIDUnder10Lions,
		Period:      1,
		TeamNumber:  1,
		Substitutes: []string{"pl-lion-09"},
	})
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("expected ErrPolicyViolation for non-member substitute, got %v", err)
	}
}

func TestSelectionService_Save_RejectsDuplicatePlayers(t *testing.T) {
	service, _ := newSelectionFixture([]squad.Squad{{
		EventID:   "ev-lions-match-01",
		TeamID:    memory.TeamIDUnder10Lions,
		PlayerIDs: []string{"pl-lion-01"},
	}})

	_, err := service.Save(t.Context(), selection.Selection{
		EventID:    "ev-lions-match-01",
		TeamID:     memory.TeamIDUnder10Lions,
		Period:     1,
		TeamNumber: 1,
		PlayerPositions: []selection.PlayerPosition{
			{PlayerID: "pl-lion-01", Position: "GK"},
		},
		Substitutes: []string{"pl-lion-01"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate player, got %v", err)
	}
}

func TestSelectionService_Save_ReportsCrossTeamConflicts(t *testing.T) {
	service, _ := newSelectionFixture([]squad.Squad{{
		EventID:   "ev-lions-match-01",
		TeamID:    memory.TeamIDUnder10Lions,
		PlayerIDs: []string{"pl-lion-01", "pl-lion-02", "pl-lion-03"},
	}})

	first, err := service.Save(t.Context(), selection.Selection{
		EventID:    "ev-lions-match-01",
		TeamID:     memory.TeamIDUnder10Lions,
		Period:     1,
		TeamNumber: 1,
		PlayerPositions: []selection.PlayerPosition{
			{PlayerID: "pl-lion-01", Position: "GK"},
			{PlayerID: "pl-lion-02", Position: "DEF-R"},
		},
	})
	if err != nil {
		t.Fatalf("save first sheet: %v", err)
	}
	if len(first.Conflicts) != 0 {
		t.Fatalf("expected no conflicts on the first sheet, got %v", first.Conflicts)
	}

	// The second concurrent team sheet fields pl-lion-02 again. The save
	// succeeds; the double booking comes back as a warning.
	second, err := service.Save(t.Context(), selection.Selection{
		EventID:    "ev-lions-match-01",
		TeamID:     memory.TeamIDUnder10Lions,
		Period:     1,
		TeamNumber: 2,
		PlayerPositions: []selection.PlayerPosition{
			{PlayerID: "pl-lion-02", Position: "GK"},
			{PlayerID: "pl-lion-03", Position: "ST-L"},
		},
	})
	if err != nil {
		t.Fatalf("save second sheet: %v", err)
	}

	labels, ok := second.Conflicts["pl-lion-02"]
	if !ok {
		t.Fatalf("expected a conflict for pl-lion-02, got %v", second.Conflicts)
	}
	if len(labels) != 1 || labels[0] != "Team 1 Period 1" {
		t.Fatalf("expected [Team 1 Period 1], got %v", labels)
	}
	if _, ok := second.Conflicts["pl-lion-03"]; ok {
		t.Fatal("pl-lion-03 is only on one sheet and must not be flagged")
	}
}

func TestSelectionService_PositionMap_FallsBackToGameFormat(t *testing.T) {
	service, _ := newSelectionFixture([]squad.Squad{{
		EventID:   "ev-lions-match-01",
		TeamID:    memory.TeamIDUnder10Lions,
		PlayerIDs: []string{"pl-lion-01", "pl-lion-02", "pl-lion-03", "pl-lion-04", "pl-lion-05", "pl-lion-06", "pl-lion-07", "pl-tiger-01"},
	}})

	// No formation id: the Lions are a 7-a-side team, so the default seven
	// position labels apply and the eighth player overflows.
	if _, err := service.Save(t.Context(), selection.Selection{
		EventID:    "ev-lions-match-01",
		TeamID:     memory.TeamIDUnder10Lions,
		Period:     1,
		TeamNumber: 1,
		PlayerPositions: []selection.PlayerPosition{
			{PlayerID: "pl-lion-01"}, {PlayerID: "pl-lion-02"}, {PlayerID: "pl-lion-03"},
			{PlayerID: "pl-lion-04"}, {PlayerID: "pl-lion-05"}, {PlayerID: "pl-lion-06"},
			{PlayerID: "pl-lion-07"}, {PlayerID: "pl-tiger-01"},
		},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	mapped, err := service.PositionMap(t.Context(), "ev-lions-match-01", memory.TeamIDUnder10Lions, 1, 1)
	if err != nil {
		t.Fatalf("position map: %v", err)
	}
	if mapped.Formation.ID != "default-7" {
		t.Fatalf("expected default-7 formation, got %s", mapped.Formation.ID)
	}
	if len(mapped.Assigned) != 7 {
		t.Fatalf("expected 7 assigned, got %d", len(mapped.Assigned))
	}
	if mapped.Assigned[0].Position != "GK" || mapped.Assigned[0].PlayerID != "pl-lion-01" {
		t.Fatalf("expected pl-lion-01 in goal, got %+v", mapped.Assigned[0])
	}
	if len(mapped.Unassigned) != 1 || mapped.Unassigned[0] != "pl-tiger-01" {
		t.Fatalf("expected pl-tiger-01 in overflow, got %v", mapped.Unassigned)
	}
	if mapped.Phase() != selection.PhaseFullyAssigned {
		t.Fatalf("expected fully assigned phase, got %s", mapped.Phase())
	}
}
