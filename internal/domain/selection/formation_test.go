package selection

import (
	"fmt"
	"testing"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
)

func orderedIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("player-%02d", i))
	}
	return ids
}

func TestMapToPositions_Overflow(t *testing.T) {
	got := MapToPositions("4-4-2", team.Format11ASide, orderedIDs(13))

	if len(got.Assigned) != 11 {
		t.Fatalf("expected 11 assigned, got %d", len(got.Assigned))
	}
	for i, pp := range got.Assigned {
		if pp.PlayerID != fmt.Sprintf("player-%02d", i) {
			t.Fatalf("position %d filled by %s, expected player-%02d", i, pp.PlayerID, i)
		}
		if pp.Position != got.Formation.Positions[i] {
			t.Fatalf("position %d labeled %s, expected %s", i, pp.Position, got.Formation.Positions[i])
		}
	}
	if len(got.Unassigned) != 2 {
		t.Fatalf("expected 2 overflow players, got %d", len(got.Unassigned))
	}
	if got.Unassigned[0] != "player-11" || got.Unassigned[1] != "player-12" {
		t.Fatalf("overflow must keep selection order, got %v", got.Unassigned)
	}
}

func TestMapToPositions_UnknownFormationFallsBack(t *testing.T) {
	got := MapToPositions("2-2-2-2-2", team.Format7ASide, orderedIDs(7))

	if got.Formation.ID != "default-7" {
		t.Fatalf("expected 7-a-side default formation, got %s", got.Formation.ID)
	}
	if len(got.Assigned) != 7 || len(got.Unassigned) != 0 {
		t.Fatalf("expected full 7-player mapping, got assigned=%d overflow=%d", len(got.Assigned), len(got.Unassigned))
	}
}

func TestMapToPositions_Idempotent(t *testing.T) {
	ids := orderedIDs(9)
	first := MapToPositions("3-5-2", team.Format11ASide, ids)
	second := MapToPositions("3-5-2", team.Format11ASide, ids)

	if len(first.Assigned) != len(second.Assigned) {
		t.Fatalf("assigned sizes differ: %d vs %d", len(first.Assigned), len(second.Assigned))
	}
	for i := range first.Assigned {
		if first.Assigned[i] != second.Assigned[i] {
			t.Fatalf("mapping differs at %d: %+v vs %+v", i, first.Assigned[i], second.Assigned[i])
		}
	}
}

func TestPositionMap_Phases(t *testing.T) {
	if phase := MapToPositions("4-4-2", team.Format11ASide, nil).Phase(); phase != PhaseEmpty {
		t.Fatalf("expected empty phase, got %s", phase)
	}
	if phase := MapToPositions("4-4-2", team.Format11ASide, orderedIDs(6)).Phase(); phase != PhasePartiallyAssigned {
		t.Fatalf("expected partially assigned, got %s", phase)
	}
	if phase := MapToPositions("4-4-2", team.Format11ASide, orderedIDs(11)).Phase(); phase != PhaseFullyAssigned {
		t.Fatalf("expected fully assigned, got %s", phase)
	}
	// Overflow does not push the phase past fully assigned.
	if phase := MapToPositions("4-4-2", team.Format11ASide, orderedIDs(14)).Phase(); phase != PhaseFullyAssigned {
		t.Fatalf("expected fully assigned with overflow, got %s", phase)
	}
}

func TestFormationByID_KnownFormations(t *testing.T) {
	for _, id := range []string{"4-4-2", "4-3-3", "3-5-2", "4-2-3-1", "3-4-3"} {
		f, known := FormationByID(id, team.Format11ASide)
		if !known {
			t.Fatalf("formation %s should be known", id)
		}
		if len(f.Positions) != 11 {
			t.Fatalf("formation %s must list 11 positions, got %d", id, len(f.Positions))
		}
	}
}
