package roster

import (
	"errors"
	"fmt"
	"testing"
)

func playerIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("player-%02d", i))
	}
	return ids
}

func TestAutoDistribute_ContiguousBlocks(t *testing.T) {
	plan, err := AutoDistribute(playerIDs(22), 2)
	if err != nil {
		t.Fatalf("auto distribute failed: %v", err)
	}

	red := plan.Team(0)
	blue := plan.Team(1)
	if len(red) != 11 || len(blue) != 11 {
		t.Fatalf("expected 11/11 split, got %d/%d", len(red), len(blue))
	}
	if red[0] != "player-00" || red[10] != "player-10" {
		t.Fatalf("team 0 must hold the first contiguous block, got %v", red)
	}
	if blue[0] != "player-11" || blue[10] != "player-21" {
		t.Fatalf("team 1 must hold the second contiguous block, got %v", blue)
	}
}

func TestAutoDistribute_UnevenLastBlock(t *testing.T) {
	plan, err := AutoDistribute(playerIDs(7), 3)
	if err != nil {
		t.Fatalf("auto distribute failed: %v", err)
	}

	// perTeam = ceil(7/3) = 3: blocks of 3, 3, 1.
	sizes := []int{len(plan.Team(0)), len(plan.Team(1)), len(plan.Team(2))}
	if sizes[0] != 3 || sizes[1] != 3 || sizes[2] != 1 {
		t.Fatalf("expected block sizes 3/3/1, got %v", sizes)
	}
}

func TestAutoDistribute_Completeness(t *testing.T) {
	for _, tc := range []struct {
		players int
		teams   int
	}{
		{players: 22, teams: 2},
		{players: 23, teams: 2},
		{players: 30, teams: 3},
		{players: 5, teams: 4},
	} {
		plan, err := AutoDistribute(playerIDs(tc.players), tc.teams)
		if err != nil {
			t.Fatalf("auto distribute %d/%d failed: %v", tc.players, tc.teams, err)
		}

		seen := make(map[string]int)
		total := 0
		for idx := 0; idx < tc.teams; idx++ {
			for _, id := range plan.Team(idx) {
				seen[id]++
				total++
			}
		}
		if total != tc.players {
			t.Fatalf("%d/%d: expected %d assigned, got %d", tc.players, tc.teams, tc.players, total)
		}
		for id, count := range seen {
			if count != 1 {
				t.Fatalf("%d/%d: player %s assigned %d times", tc.players, tc.teams, id, count)
			}
		}
		if !plan.Complete(tc.players) {
			t.Fatalf("%d/%d: plan should be complete", tc.players, tc.teams)
		}
	}
}

func TestAutoDistribute_Deterministic(t *testing.T) {
	ids := playerIDs(17)
	first, err := AutoDistribute(ids, 3)
	if err != nil {
		t.Fatalf("first distribute failed: %v", err)
	}
	second, err := AutoDistribute(ids, 3)
	if err != nil {
		t.Fatalf("second distribute failed: %v", err)
	}

	for idx := 0; idx < 3; idx++ {
		a, b := first.Team(idx), second.Team(idx)
		if len(a) != len(b) {
			t.Fatalf("team %d sizes differ: %d vs %d", idx, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("team %d differs at %d: %s vs %s", idx, i, a[i], b[i])
			}
		}
	}
}

func TestAutoDistribute_TooFewTeams(t *testing.T) {
	if _, err := AutoDistribute(playerIDs(10), 1); !errors.Is(err, ErrTooFewTeams) {
		t.Fatalf("expected ErrTooFewTeams, got %v", err)
	}
	if _, err := AutoDistribute(nil, 2); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

func TestAssign_MovesWithoutDuplicates(t *testing.T) {
	plan, err := AutoDistribute(playerIDs(22), 2)
	if err != nil {
		t.Fatalf("auto distribute failed: %v", err)
	}

	// Coach moves player-05 from team 0 to team 1.
	if err := plan.Assign("player-05", 1); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if len(plan.Team(0)) != 10 || len(plan.Team(1)) != 12 {
		t.Fatalf("expected 10/12 after move, got %d/%d", len(plan.Team(0)), len(plan.Team(1)))
	}
	if idx, ok := plan.TeamOf("player-05"); !ok || idx != 1 {
		t.Fatalf("expected player-05 on team 1, got team=%d ok=%v", idx, ok)
	}
	if !plan.Complete(22) {
		t.Fatal("plan should still cover all 22 players")
	}

	// Re-assigning to the same team must stay idempotent.
	if err := plan.Assign("player-05", 1); err != nil {
		t.Fatalf("repeat assign failed: %v", err)
	}
	count := 0
	for _, id := range plan.Team(1) {
		if id == "player-05" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("player-05 appears %d times on team 1", count)
	}
}

func TestAssign_OutOfRange(t *testing.T) {
	plan, err := NewPlan(2)
	if err != nil {
		t.Fatalf("new plan failed: %v", err)
	}
	if err := plan.Assign("player-00", 2); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if err := plan.Assign("", 0); err == nil {
		t.Fatal("expected empty player id error")
	}
}
