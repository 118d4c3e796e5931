package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/squad"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

// availabilityResolver narrows AvailabilityService to what squad admission
// needs: one user's effective status for one event.
type availabilityResolver interface {
	EffectiveStatus(ctx context.Context, eventID, userID string) (availability.Status, bool, error)
}

type SquadService struct {
	eventRepo    event.Repository
	playerRepo   player.Repository
	squadRepo    squad.Repository
	availability availabilityResolver
	logger       *logging.Logger
	now          func() time.Time
}

func NewSquadService(
	eventRepo event.Repository,
	playerRepo player.Repository,
	squadRepo squad.Repository,
	availability availabilityResolver,
	logger *logging.Logger,
) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		eventRepo:    eventRepo,
		playerRepo:   playerRepo,
		squadRepo:    squadRepo,
		availability: availability,
		logger:       logger,
		now:          time.Now,
	}
}

// AddPlayer admits a player into the event squad, applying the availability
// admission policy and, for match-day events, subscription eligibility.
func (s *SquadService) AddPlayer(ctx context.Context, eventID, teamID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.AddPlayer")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if eventID == "" || teamID == "" || playerID == "" {
		return squad.Squad{}, fmt.Errorf("%w: event id, team id and player id are required", ErrInvalidInput)
	}

	evt, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get event by id: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	candidate, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if evt.IsMatchDay() && !candidate.MatchEligible() {
		return squad.Squad{}, fmt.Errorf("%w: subscription %s does not cover match selection", ErrPolicyViolation, candidate.Subscription)
	}

	status, err := s.statusOf(ctx, eventID, playerID)
	if err != nil {
		return squad.Squad{}, err
	}

	current, err := s.loadOrNew(ctx, eventID, teamID)
	if err != nil {
		return squad.Squad{}, err
	}

	next, err := squad.AddPlayer(current, playerID, status)
	if err != nil {
		return squad.Squad{}, policyErr(err)
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.squadRepo.Upsert(ctx, next); err != nil {
		return squad.Squad{}, fmt.Errorf("save squad: %w", err)
	}

	s.logger.InfoContext(ctx, "player added to squad", "event_id", eventID, "team_id", teamID, "player_id", playerID)

	return next, nil
}

// RemovePlayer drops a squad member; a removed captain loses the armband in
// the same persisted transition.
func (s *SquadService) RemovePlayer(ctx context.Context, eventID, teamID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.RemovePlayer")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if eventID == "" || teamID == "" || playerID == "" {
		return squad.Squad{}, fmt.Errorf("%w: event id, team id and player id are required", ErrInvalidInput)
	}

	current, exists, err := s.squadRepo.GetByEventAndTeam(ctx, eventID, teamID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad for event=%s team=%s", ErrNotFound, eventID, teamID)
	}

	next, err := squad.RemoveFromSquad(current, playerID)
	if err != nil {
		return squad.Squad{}, policyErr(err)
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.squadRepo.Upsert(ctx, next); err != nil {
		return squad.Squad{}, fmt.Errorf("save squad: %w", err)
	}

	return next, nil
}

// SetCaptain assigns or clears the captaincy. A captain who is not yet a
// member joins the squad and takes the armband in one persisted write, so
// no "captain but not in squad" state is ever stored.
func (s *SquadService) SetCaptain(ctx context.Context, eventID, teamID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.SetCaptain")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if eventID == "" || teamID == "" {
		return squad.Squad{}, fmt.Errorf("%w: event id and team id are required", ErrInvalidInput)
	}

	current, err := s.loadOrNew(ctx, eventID, teamID)
	if err != nil {
		return squad.Squad{}, err
	}

	status := availability.StatusPending
	if playerID != "" {
		if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
			return squad.Squad{}, fmt.Errorf("get player by id: %w", err)
		} else if !exists {
			return squad.Squad{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		status, err = s.statusOf(ctx, eventID, playerID)
		if err != nil {
			return squad.Squad{}, err
		}
	}

	next, err := squad.SetCaptain(current, playerID, status)
	if err != nil {
		return squad.Squad{}, policyErr(err)
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.squadRepo.Upsert(ctx, next); err != nil {
		return squad.Squad{}, fmt.Errorf("save squad: %w", err)
	}

	return next, nil
}

// ListPlayers returns the squad joined with availability, in the one shared
// display order: availability rank, then squad number.
func (s *SquadService) ListPlayers(ctx context.Context, eventID, teamID string) ([]squad.SquadPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.ListPlayers")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	teamID = strings.TrimSpace(teamID)
	if eventID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: event id and team id are required", ErrInvalidInput)
	}

	current, exists, err := s.squadRepo.GetByEventAndTeam(ctx, eventID, teamID)
	if err != nil {
		return nil, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return nil, nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, current.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("get squad players: %w", err)
	}

	out := make([]squad.SquadPlayer, 0, len(players))
	for _, p := range players {
		status, responded, err := s.availability.EffectiveStatus(ctx, eventID, p.ID)
		if err != nil {
			return nil, err
		}
		if !responded {
			status = availability.StatusPending
		}
		out = append(out, squad.SquadPlayer{
			Player:       p,
			Availability: status,
			Role:         current.RoleOf(p.ID),
		})
	}
	squad.SortPlayers(out)

	return out, nil
}

func (s *SquadService) statusOf(ctx context.Context, eventID, playerID string) (availability.Status, error) {
	status, responded, err := s.availability.EffectiveStatus(ctx, eventID, playerID)
	if err != nil {
		return "", fmt.Errorf("resolve availability: %w", err)
	}
	if !responded {
		// No response yet; the admission policy treats that like pending.
		return availability.StatusPending, nil
	}

	return status, nil
}

func (s *SquadService) loadOrNew(ctx context.Context, eventID, teamID string) (squad.Squad, error) {
	current, exists, err := s.squadRepo.GetByEventAndTeam(ctx, eventID, teamID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		current = squad.Squad{EventID: eventID, TeamID: teamID}
	}

	return current, nil
}

func policyErr(err error) error {
	switch {
	case errors.Is(err, squad.ErrEmptyPlayerID):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, squad.ErrNotSquadMember), errors.Is(err, squad.ErrAlreadyInSquad),
		errors.Is(err, squad.ErrPlayerDeclined), errors.Is(err, squad.ErrCaptainNotMember):
		return fmt.Errorf("%w: %v", ErrPolicyViolation, err)
	default:
		return err
	}
}
