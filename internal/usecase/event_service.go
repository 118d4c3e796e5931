package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	idgen "github.com/grassrootshq/teamdesk/internal/platform/id"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

// Notifier pushes an event notification to its team. Fire-and-forget:
// failures surface to the caller once and are never retried here.
type Notifier interface {
	Send(ctx context.Context, eventID string) error
}

type CreateEventInput struct {
	TeamID   string
	Title    string
	Type     event.Type
	Date     time.Time
	Location string
	Notes    string
	Notify   bool
}

type UpdateEventInput struct {
	EventID  string
	Title    string
	Date     time.Time
	Location string
	Notes    string
}

type EventService struct {
	teamRepo  team.Repository
	eventRepo event.Repository
	notifier  Notifier
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewEventService(
	teamRepo team.Repository,
	eventRepo event.Repository,
	notifier Notifier,
	idGen idgen.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &EventService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
		notifier:  notifier,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Title = strings.TrimSpace(input.Title)
	if input.TeamID == "" {
		return event.Event{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return event.Event{}, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return event.Event{}, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return event.Event{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	now := s.now().UTC()
	item := event.Event{
		ID:        eventID,
		TeamID:    input.TeamID,
		Title:     input.Title,
		Type:      input.Type,
		Date:      input.Date,
		Location:  strings.TrimSpace(input.Location),
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.eventRepo.Insert(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("insert event: %w", err)
	}

	if input.Notify && s.notifier != nil {
		// Notification failure never rolls the event back; the caller gets
		// the created event plus a logged warning to surface as a toast.
		if err := s.notifier.Send(ctx, eventID); err != nil {
			s.logger.WarnContext(ctx, "event notification failed", "event_id", eventID, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "event created", "event_id", eventID, "team_id", input.TeamID, "type", string(item.Type))

	return item, nil
}

func (s *EventService) Update(ctx context.Context, input UpdateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Update")
	defer span.End()

	input.EventID = strings.TrimSpace(input.EventID)
	if input.EventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	existing, exists, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event by id: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, input.EventID)
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		existing.Title = title
	}
	if !input.Date.IsZero() {
		existing.Date = input.Date
	}
	if location := strings.TrimSpace(input.Location); location != "" {
		existing.Location = location
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		existing.Notes = notes
	}
	existing.UpdatedAt = s.now().UTC()

	if err := s.eventRepo.Update(ctx, existing); err != nil {
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}

	return existing, nil
}

func (s *EventService) GetByID(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetByID")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event by id: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return item, nil
}

func (s *EventService) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.eventRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list events by team: %w", err)
	}

	return items, nil
}

func (s *EventService) Delete(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Delete")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}
