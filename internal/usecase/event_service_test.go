package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, eventID string) error {
	n.sent = append(n.sent, eventID)
	return n.err
}

func TestEventService_Create_NotifiesTeam(t *testing.T) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	eventRepo := memory.NewEventRepository(nil)
	notifier := &recordingNotifier{}

	service := NewEventService(teamRepo, eventRepo, notifier, staticIDGenerator{id: "ev-001"}, logging.NewNop())
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreateEventInput{
		TeamID: memory.TeamIDUnder10Lions,
		Title:  "Saturday Match",
		Type:   event.TypeMatch,
		Date:   time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		Notify: true,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if created.ID != "ev-001" {
		t.Fatalf("expected event id ev-001, got %s", created.ID)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "ev-001" {
		t.Fatalf("expected one notification for ev-001, got %v", notifier.sent)
	}
}

func TestEventService_Create_NotificationFailureDoesNotRollBack(t *testing.T) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	eventRepo := memory.NewEventRepository(nil)
	notifier := &recordingNotifier{err: errors.New("push gateway down")}

	service := NewEventService(teamRepo, eventRepo, notifier, staticIDGenerator{id: "ev-002"}, logging.NewNop())

	created, err := service.Create(t.Context(), CreateEventInput{
		TeamID: memory.TeamIDUnder10Lions,
		Title:  "Tuesday Training",
		Type:   event.TypeTraining,
		Date:   time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		Notify: true,
	})
	if err != nil {
		t.Fatalf("create must succeed despite notification failure: %v", err)
	}

	if _, exists, _ := eventRepo.GetByID(t.Context(), created.ID); !exists {
		t.Fatal("expected event persisted despite notification failure")
	}
}

func TestEventService_Create_UnknownTeam(t *testing.T) {
	teamRepo := memory.NewTeamRepository(nil)
	eventRepo := memory.NewEventRepository(nil)

	service := NewEventService(teamRepo, eventRepo, nil, staticIDGenerator{id: "ev-003"}, logging.NewNop())

	_, err := service.Create(t.Context(), CreateEventInput{
		TeamID: "team-nope",
		Title:  "Ghost Match",
		Type:   event.TypeMatch,
		Date:   time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
