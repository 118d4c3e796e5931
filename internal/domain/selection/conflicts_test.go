package selection

import "testing"

func TestFindConflicts_ReportsOtherSelections(t *testing.T) {
	teamA := Selection{
		EventID: "ev-1", TeamID: "team-1", Period: 1, TeamNumber: 1,
		PlayerPositions: []PlayerPosition{
			{PlayerID: "p1", Position: "GK"},
			{PlayerID: "p2", Position: "ST"},
		},
	}
	teamB := Selection{
		EventID: "ev-1", TeamID: "team-1", Period: 1, TeamNumber: 2,
		PlayerPositions: []PlayerPosition{
			{PlayerID: "p2", Position: "GK"},
			{PlayerID: "p3", Position: "ST"},
		},
	}
	candidates := []Selection{teamA, teamB}

	got := FindConflicts("p2", candidates, 1, 1)
	if len(got) != 1 || got[0] != "Team 2 Period 1" {
		t.Fatalf("expected [\"Team 2 Period 1\"], got %v", got)
	}

	if got := FindConflicts("p1", candidates, 1, 1); len(got) != 0 {
		t.Fatalf("expected no conflicts for p1, got %v", got)
	}
}

func TestFindConflicts_SubstitutesCount(t *testing.T) {
	candidates := []Selection{
		{EventID: "ev-1", TeamID: "team-1", Period: 2, TeamNumber: 1, Substitutes: []string{"p7"}},
	}

	got := FindConflicts("p7", candidates, 1, 1)
	if len(got) != 1 || got[0] != "Team 1 Period 2" {
		t.Fatalf("bench players must conflict too, got %v", got)
	}
}

func TestFindConflicts_NeverMutates(t *testing.T) {
	cand := Selection{
		EventID: "ev-1", TeamID: "team-1", Period: 1, TeamNumber: 2,
		PlayerPositions: []PlayerPosition{{PlayerID: "p2", Position: "GK"}},
	}
	candidates := []Selection{cand}

	_ = FindConflicts("p2", candidates, 1, 1)
	_ = FindConflicts("", candidates, 1, 1)

	if len(candidates[0].PlayerPositions) != 1 || candidates[0].PlayerPositions[0].PlayerID != "p2" {
		t.Fatal("conflict detection must not mutate candidates")
	}
}
