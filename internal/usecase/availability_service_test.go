package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/platform/cache"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

func TestAvailabilityService_Board_RolePrecedence(t *testing.T) {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	availabilityRepo := memory.NewAvailabilityRepository(nil)
	service := NewAvailabilityService(eventRepo, availabilityRepo, nil, logging.NewNop())

	// One user declined as player but accepted as staff: available wins.
	submissions := []SubmitAvailabilityInput{
		{EventID: "ev-lions-training-01", UserID: "user-coach", Role: availability.RolePlayer, Status: availability.StatusUnavailable},
		{EventID: "ev-lions-training-01", UserID: "user-coach", Role: availability.RoleStaff, Status: availability.StatusAvailable},
		{EventID: "ev-lions-training-01", UserID: "pl-lion-01", Role: availability.RolePlayer, Status: availability.StatusUnavailable},
		{EventID: "ev-lions-training-01", UserID: "pl-lion-02", Role: availability.RolePlayer, Status: availability.StatusPending},
	}
	for _, in := range submissions {
		if _, err := service.Submit(t.Context(), in); err != nil {
			t.Fatalf("submit %+v: %v", in, err)
		}
	}

	board, err := service.Board(t.Context(), "ev-lions-training-01")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("expected 3 board entries, got %d", len(board))
	}

	// Sorted available, pending, unavailable.
	want := []BoardEntry{
		{UserID: "user-coach", Status: availability.StatusAvailable},
		{UserID: "pl-lion-02", Status: availability.StatusPending},
		{UserID: "pl-lion-01", Status: availability.StatusUnavailable},
	}
	for i := range want {
		if board[i] != want[i] {
			t.Fatalf("board[%d] = %+v, want %+v", i, board[i], want[i])
		}
	}
}

func TestAvailabilityService_Submit_InvalidatesCachedBoard(t *testing.T) {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	availabilityRepo := memory.NewAvailabilityRepository(nil)
	boardCache := cache.NewStore(time.Minute)
	service := NewAvailabilityService(eventRepo, availabilityRepo, boardCache, logging.NewNop())

	if _, err := service.Submit(t.Context(), SubmitAvailabilityInput{
		EventID: "ev-lions-training-01",
		UserID:  "pl-lion-01",
		Role:    availability.RolePlayer,
		Status:  availability.StatusPending,
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Prime the cache.
	board, err := service.Board(t.Context(), "ev-lions-training-01")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if board[0].Status != availability.StatusPending {
		t.Fatalf("expected pending, got %s", board[0].Status)
	}

	// A new submission must not serve the stale cached board.
	if _, err := service.Submit(t.Context(), SubmitAvailabilityInput{
		EventID: "ev-lions-training-01",
		UserID:  "pl-lion-01",
		Role:    availability.RolePlayer,
		Status:  availability.StatusAvailable,
	}); err != nil {
		t.Fatalf("submit update: %v", err)
	}

	board, err = service.Board(t.Context(), "ev-lions-training-01")
	if err != nil {
		t.Fatalf("board after update: %v", err)
	}
	if board[0].Status != availability.StatusAvailable {
		t.Fatalf("expected available after resubmission, got %s", board[0].Status)
	}
}

func TestAvailabilityService_EffectiveStatus_NoResponse(t *testing.T) {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	availabilityRepo := memory.NewAvailabilityRepository(nil)
	service := NewAvailabilityService(eventRepo, availabilityRepo, nil, logging.NewNop())

	_, responded, err := service.EffectiveStatus(t.Context(), "ev-lions-training-01", "pl-lion-01")
	if err != nil {
		t.Fatalf("effective status: %v", err)
	}
	if responded {
		t.Fatal("expected no response for a user with no records")
	}
}

func TestAvailabilityService_Submit_UnknownEvent(t *testing.T) {
	eventRepo := memory.NewEventRepository(nil)
	availabilityRepo := memory.NewAvailabilityRepository(nil)
	service := NewAvailabilityService(eventRepo, availabilityRepo, nil, logging.NewNop())

	_, err := service.Submit(t.Context(), SubmitAvailabilityInput{
		EventID: "ev-nope",
		UserID:  "pl-lion-01",
		Role:    availability.RolePlayer,
		Status:  availability.StatusAvailable,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
