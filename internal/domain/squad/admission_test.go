package squad

import (
	"errors"
	"testing"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
)

func TestCanAdmit(t *testing.T) {
	if !CanAdmit(availability.StatusAvailable) {
		t.Fatal("available players must be admittable")
	}
	if !CanAdmit(availability.StatusPending) {
		t.Fatal("pending players may be provisionally admitted")
	}
	if CanAdmit(availability.StatusUnavailable) {
		t.Fatal("declined players must not be admittable")
	}
}

func TestAddPlayer(t *testing.T) {
	s := Squad{EventID: "ev-1", TeamID: "team-1"}

	s, err := AddPlayer(s, "p1", availability.StatusAvailable)
	if err != nil {
		t.Fatalf("add available player failed: %v", err)
	}
	if _, err := AddPlayer(s, "p1", availability.StatusAvailable); !errors.Is(err, ErrAlreadyInSquad) {
		t.Fatalf("expected ErrAlreadyInSquad, got %v", err)
	}
	if _, err := AddPlayer(s, "p2", availability.StatusUnavailable); !errors.Is(err, ErrPlayerDeclined) {
		t.Fatalf("expected ErrPlayerDeclined, got %v", err)
	}
}

func TestSetCaptain_AtomicJoin(t *testing.T) {
	s := Squad{EventID: "ev-1", TeamID: "team-1", PlayerIDs: []string{"p1"}}

	// Captain not yet in squad: join and captain in one transition.
	next, err := SetCaptain(s, "p2", availability.StatusPending)
	if err != nil {
		t.Fatalf("set captain failed: %v", err)
	}
	if !next.Contains("p2") || next.CaptainID != "p2" {
		t.Fatalf("expected p2 as member and captain, got members=%v captain=%s", next.PlayerIDs, next.CaptainID)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("captain invariant broken: %v", err)
	}

	// Declined players cannot be pulled in via captaincy.
	if _, err := SetCaptain(s, "p3", availability.StatusUnavailable); !errors.Is(err, ErrPlayerDeclined) {
		t.Fatalf("expected ErrPlayerDeclined, got %v", err)
	}

	// Clearing.
	cleared, err := SetCaptain(next, "", availability.StatusAvailable)
	if err != nil {
		t.Fatalf("clear captain failed: %v", err)
	}
	if cleared.CaptainID != "" {
		t.Fatalf("expected cleared captain, got %s", cleared.CaptainID)
	}
	if !cleared.Contains("p2") {
		t.Fatal("clearing the captaincy must not remove the player")
	}
}

func TestSetCaptain_DemotesViceCaptain(t *testing.T) {
	s := Squad{EventID: "ev-1", TeamID: "team-1", PlayerIDs: []string{"p1", "p2"}, ViceCaptainID: "p2"}

	next, err := SetCaptain(s, "p2", availability.StatusAvailable)
	if err != nil {
		t.Fatalf("set captain failed: %v", err)
	}
	if next.CaptainID != "p2" || next.ViceCaptainID != "" {
		t.Fatalf("promoting the vice captain must vacate the vice slot, got captain=%s vice=%s", next.CaptainID, next.ViceCaptainID)
	}
}

func TestRemoveFromSquad_ClearsCaptain(t *testing.T) {
	s := Squad{EventID: "ev-1", TeamID: "team-1", PlayerIDs: []string{"p1", "p2"}, CaptainID: "p2"}

	next, err := RemoveFromSquad(s, "p2")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if next.Contains("p2") {
		t.Fatal("p2 should be removed")
	}
	if next.CaptainID != "" {
		t.Fatalf("captain must be cleared with the removal, got %s", next.CaptainID)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("squad invalid after removal: %v", err)
	}

	if _, err := RemoveFromSquad(next, "p9"); !errors.Is(err, ErrNotSquadMember) {
		t.Fatalf("expected ErrNotSquadMember, got %v", err)
	}
}

func TestCaptainInvariant_UnderMutationSequences(t *testing.T) {
	s := Squad{EventID: "ev-1", TeamID: "team-1"}

	steps := []func(Squad) (Squad, error){
		func(s Squad) (Squad, error) { return AddPlayer(s, "p1", availability.StatusAvailable) },
		func(s Squad) (Squad, error) { return SetCaptain(s, "p1", availability.StatusAvailable) },
		func(s Squad) (Squad, error) { return AddPlayer(s, "p2", availability.StatusPending) },
		func(s Squad) (Squad, error) { return SetCaptain(s, "p3", availability.StatusPending) },
		func(s Squad) (Squad, error) { return RemoveFromSquad(s, "p3") },
		func(s Squad) (Squad, error) { return SetCaptain(s, "p2", availability.StatusPending) },
		func(s Squad) (Squad, error) { return RemoveFromSquad(s, "p1") },
	}

	for i, step := range steps {
		next, err := step(s)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if next.CaptainID != "" && !next.Contains(next.CaptainID) {
			t.Fatalf("step %d: captain %s not in squad %v", i, next.CaptainID, next.PlayerIDs)
		}
		s = next
	}
}

func TestSortPlayers_SharedComparator(t *testing.T) {
	players := []SquadPlayer{
		{Player: player.Player{ID: "p1", SquadNumber: 9}, Availability: availability.StatusUnavailable},
		{Player: player.Player{ID: "p2", SquadNumber: 4}, Availability: availability.StatusPending},
		{Player: player.Player{ID: "p3", SquadNumber: 2}, Availability: availability.StatusAvailable},
		{Player: player.Player{ID: "p4", SquadNumber: 7}, Availability: availability.StatusAvailable},
		{Player: player.Player{ID: "p5", SquadNumber: 1}},
	}

	SortPlayers(players)

	want := []string{"p3", "p4", "p2", "p1", "p5"}
	for i, id := range want {
		if players[i].Player.ID != id {
			got := make([]string, 0, len(players))
			for _, sp := range players {
				got = append(got, sp.Player.ID)
			}
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
