package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	idgen "github.com/grassrootshq/teamdesk/internal/platform/id"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

type CreatePlayerInput struct {
	TeamID       string
	Name         string
	SquadNumber  int
	Subscription player.SubscriptionType
}

type UpdatePlayerInput struct {
	PlayerID     string
	Name         string
	SquadNumber  int
	Subscription player.SubscriptionType
}

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)
	if input.TeamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return player.Player{}, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if err := s.ensureSquadNumberFree(ctx, input.TeamID, input.SquadNumber, ""); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:           playerID,
		TeamID:       input.TeamID,
		Name:         input.Name,
		SquadNumber:  input.SquadNumber,
		Subscription: input.Subscription,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Insert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"player_id", playerID,
		"team_id", input.TeamID,
		"squad_number", input.SquadNumber,
	)

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.PlayerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	existing, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		existing.Name = name
	}
	if input.SquadNumber > 0 && input.SquadNumber != existing.SquadNumber {
		if err := s.ensureSquadNumberFree(ctx, existing.TeamID, input.SquadNumber, existing.ID); err != nil {
			return player.Player{}, err
		}
		existing.SquadNumber = input.SquadNumber
	}
	if input.Subscription != "" {
		existing.Subscription = input.Subscription
	}
	existing.UpdatedAt = s.now().UTC()

	if err := existing.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, existing); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return existing, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

// Reassign moves a player to another team. The squad number must also be
// free on the destination team; callers pass a new number when it collides.
func (s *PlayerService) Reassign(ctx context.Context, playerID, teamID string, squadNumber int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Reassign")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	teamID = strings.TrimSpace(teamID)
	if playerID == "" || teamID == "" {
		return player.Player{}, fmt.Errorf("%w: player id and team id are required", ErrInvalidInput)
	}

	existing, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return player.Player{}, fmt.Errorf("get destination team: %w", err)
	} else if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	number := existing.SquadNumber
	if squadNumber > 0 {
		number = squadNumber
	}
	if err := s.ensureSquadNumberFree(ctx, teamID, number, existing.ID); err != nil {
		return player.Player{}, err
	}

	existing.TeamID = teamID
	existing.SquadNumber = number
	existing.UpdatedAt = s.now().UTC()

	if err := s.playerRepo.Update(ctx, existing); err != nil {
		return player.Player{}, fmt.Errorf("reassign player: %w", err)
	}

	s.logger.InfoContext(ctx, "player reassigned", "player_id", playerID, "team_id", teamID)

	return existing, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (s *PlayerService) ensureSquadNumberFree(ctx context.Context, teamID string, squadNumber int, excludePlayerID string) error {
	if squadNumber <= 0 {
		return fmt.Errorf("%w: squad number must be greater than zero", ErrInvalidInput)
	}

	teammates, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list players for squad number check: %w", err)
	}
	for _, teammate := range teammates {
		if teammate.ID == excludePlayerID {
			continue
		}
		if teammate.SquadNumber == squadNumber {
			return fmt.Errorf("%w: squad number %d already taken by %s", ErrPolicyViolation, squadNumber, teammate.Name)
		}
	}

	return nil
}
