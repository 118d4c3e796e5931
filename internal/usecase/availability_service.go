package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/platform/cache"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

const availabilityCachePrefix = "availability::"

type SubmitAvailabilityInput struct {
	EventID string
	UserID  string
	Role    availability.Role
	Status  availability.Status
}

// BoardEntry is one row of the aggregated availability board for an event.
type BoardEntry struct {
	UserID string
	Status availability.Status
}

type AvailabilityService struct {
	eventRepo        event.Repository
	availabilityRepo availability.Repository
	boardCache       *cache.Store
	logger           *logging.Logger
	now              func() time.Time
}

func NewAvailabilityService(
	eventRepo event.Repository,
	availabilityRepo availability.Repository,
	boardCache *cache.Store,
	logger *logging.Logger,
) *AvailabilityService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AvailabilityService{
		eventRepo:        eventRepo,
		availabilityRepo: availabilityRepo,
		boardCache:       boardCache,
		logger:           logger,
		now:              time.Now,
	}
}

// Submit records one role response and invalidates the event's cached board.
func (s *AvailabilityService) Submit(ctx context.Context, input SubmitAvailabilityInput) (availability.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.Submit")
	defer span.End()

	input.EventID = strings.TrimSpace(input.EventID)
	input.UserID = strings.TrimSpace(input.UserID)
	if input.EventID == "" || input.UserID == "" {
		return availability.Record{}, fmt.Errorf("%w: event id and user id are required", ErrInvalidInput)
	}

	if _, exists, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return availability.Record{}, fmt.Errorf("get event by id: %w", err)
	} else if !exists {
		return availability.Record{}, fmt.Errorf("%w: event=%s", ErrNotFound, input.EventID)
	}

	record := availability.Record{
		EventID:   input.EventID,
		UserID:    input.UserID,
		Role:      input.Role,
		Status:    input.Status,
		UpdatedAt: s.now().UTC(),
	}
	if err := record.Validate(); err != nil {
		return availability.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.availabilityRepo.Upsert(ctx, record); err != nil {
		return availability.Record{}, fmt.Errorf("upsert availability: %w", err)
	}

	if s.boardCache != nil {
		s.boardCache.Delete(ctx, availabilityCachePrefix+input.EventID)
	}

	s.logger.InfoContext(ctx, "availability submitted",
		"event_id", input.EventID,
		"user_id", input.UserID,
		"role", string(input.Role),
		"status", string(input.Status),
	)

	return record, nil
}

// Board returns the aggregated one-status-per-user view for an event. The
// board is read on every squad screen, so it goes through the TTL cache with
// single-flight loading.
func (s *AvailabilityService) Board(ctx context.Context, eventID string) ([]BoardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.Board")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if s.boardCache == nil {
		return s.loadBoard(ctx, eventID)
	}

	value, err := s.boardCache.GetOrLoad(ctx, availabilityCachePrefix+eventID, func(ctx context.Context) (any, error) {
		return s.loadBoard(ctx, eventID)
	})
	if err != nil {
		return nil, err
	}

	board, ok := value.([]BoardEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected cached board type %T", value)
	}

	return board, nil
}

// EffectiveStatus resolves one user's aggregated status for an event. The
// bool reports whether the user responded at all; "no response" is distinct
// from pending.
func (s *AvailabilityService) EffectiveStatus(ctx context.Context, eventID, userID string) (availability.Status, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.EffectiveStatus")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	userID = strings.TrimSpace(userID)
	if eventID == "" || userID == "" {
		return "", false, fmt.Errorf("%w: event id and user id are required", ErrInvalidInput)
	}

	board, err := s.Board(ctx, eventID)
	if err != nil {
		return "", false, err
	}
	for _, entry := range board {
		if entry.UserID == userID {
			return entry.Status, true, nil
		}
	}

	return "", false, nil
}

func (s *AvailabilityService) loadBoard(ctx context.Context, eventID string) ([]BoardEntry, error) {
	records, err := s.availabilityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list availability by event: %w", err)
	}

	aggregated := availability.Aggregate(records)
	board := make([]BoardEntry, 0, len(aggregated))
	for key, status := range aggregated {
		board = append(board, BoardEntry{UserID: key.UserID, Status: status})
	}
	sort.Slice(board, func(i, j int) bool {
		ri, rj := availability.Rank(board[i].Status), availability.Rank(board[j].Status)
		if ri != rj {
			return ri < rj
		}
		return board[i].UserID < board[j].UserID
	})

	return board, nil
}
