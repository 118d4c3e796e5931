package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

func TestTeamService_Create_LinksClub(t *testing.T) {
	clubRepo := memory.NewClubRepository(memory.SeedClubs())
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(nil)

	service := NewTeamService(clubRepo, teamRepo, playerRepo, staticIDGenerator{id: "team-001"}, logging.NewNop())
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreateTeamInput{
		ClubID:     memory.ClubIDRiverside,
		Name:       "U11 Falcons",
		AgeGroup:   "U11",
		GameFormat: team.Format9ASide,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID != "team-001" {
		t.Fatalf("expected team id team-001, got %s", created.ID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, created.CreatedAt)
	}

	teamIDs, err := clubRepo.ListTeamIDs(t.Context(), memory.ClubIDRiverside)
	if err != nil {
		t.Fatalf("list club team ids: %v", err)
	}
	found := false
	for _, id := range teamIDs {
		if id == "team-001" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected team-001 linked to the club, got %v", teamIDs)
	}
}

func TestTeamService_Create_UnknownClub(t *testing.T) {
	service := NewTeamService(
		memory.NewClubRepository(nil),
		memory.NewTeamRepository(nil),
		memory.NewPlayerRepository(nil),
		staticIDGenerator{id: "team-001"},
		logging.NewNop(),
	)

	_, err := service.Create(t.Context(), CreateTeamInput{
		ClubID:     "club-nope",
		Name:       "U11 Falcons",
		GameFormat: team.Format9ASide,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Delete_BlockedWhilePlayersRemain(t *testing.T) {
	service := NewTeamService(
		memory.NewClubRepository(memory.SeedClubs()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		staticIDGenerator{id: "team-001"},
		logging.NewNop(),
	)

	err := service.Delete(t.Context(), memory.TeamIDUnder10Lions)
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("expected ErrPolicyViolation, got %v", err)
	}
}
