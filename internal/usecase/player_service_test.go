package usecase

import (
	"errors"
	"testing"

	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

func newPlayerService() (*PlayerService, *memory.PlayerRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	return NewPlayerService(teamRepo, playerRepo, staticIDGenerator{id: "pl-new-01"}, logging.NewNop()), playerRepo
}

func TestPlayerService_Create_RejectsSquadNumberCollision(t *testing.T) {
	service, _ := newPlayerService()

	// Number 3 is already worn by pl-lion-03.
	_, err := service.Create(t.Context(), CreatePlayerInput{
		TeamID:      memory.TeamIDUnder10Lions,
		Name:        "New Signing",
		SquadNumber: 3,
	})
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("expected ErrPolicyViolation for duplicate number, got %v", err)
	}

	created, err := service.Create(t.Context(), CreatePlayerInput{
		TeamID:       memory.TeamIDUnder10Lions,
		Name:         "New Signing",
		SquadNumber:  8,
		Subscription: player.SubscriptionFullSquad,
	})
	if err != nil {
		t.Fatalf("create with free number: %v", err)
	}
	if created.SquadNumber != 8 {
		t.Fatalf("expected squad number 8, got %d", created.SquadNumber)
	}
}

func TestPlayerService_Reassign_MovesTeamAndChecksNumber(t *testing.T) {
	service, playerRepo := newPlayerService()

	// Number 2 is taken on the Tigers.
	_, err := service.Reassign(t.Context(), "pl-lion-01", memory.TeamIDUnder10Tigers, 2)
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("expected ErrPolicyViolation for taken number, got %v", err)
	}

	moved, err := service.Reassign(t.Context(), "pl-lion-01", memory.TeamIDUnder10Tigers, 9)
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if moved.TeamID != memory.TeamIDUnder10Tigers || moved.SquadNumber != 9 {
		t.Fatalf("unexpected reassigned player: %+v", moved)
	}

	stored, exists, err := playerRepo.GetByID(t.Context(), "pl-lion-01")
	if err != nil || !exists {
		t.Fatalf("get reassigned player: exists=%v err=%v", exists, err)
	}
	if stored.TeamID != memory.TeamIDUnder10Tigers {
		t.Fatalf("expected stored team %s, got %s", memory.TeamIDUnder10Tigers, stored.TeamID)
	}
}
