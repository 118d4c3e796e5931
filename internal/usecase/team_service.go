package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/club"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	idgen "github.com/grassrootshq/teamdesk/internal/platform/id"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

type CreateTeamInput struct {
	ClubID      string
	Name        string
	AgeGroup    string
	GameFormat  team.GameFormat
	YearGroupID string
}

type UpdateTeamInput struct {
	TeamID     string
	Name       string
	AgeGroup   string
	GameFormat team.GameFormat
}

type TeamService struct {
	clubRepo   club.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewTeamService(
	clubRepo club.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		clubRepo:   clubRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ClubID == "" {
		return team.Team{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	if _, exists, err := s.clubRepo.GetByID(ctx, input.ClubID); err != nil {
		return team.Team{}, fmt.Errorf("get club by id: %w", err)
	} else if !exists {
		return team.Team{}, fmt.Errorf("%w: club=%s", ErrNotFound, input.ClubID)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	item := team.Team{
		ID:          teamID,
		ClubID:      input.ClubID,
		Name:        input.Name,
		AgeGroup:    strings.TrimSpace(input.AgeGroup),
		GameFormat:  input.GameFormat,
		YearGroupID: strings.TrimSpace(input.YearGroupID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Insert(ctx, []team.Team{item}); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	if err := s.clubRepo.LinkTeam(ctx, input.ClubID, teamID); err != nil {
		return team.Team{}, fmt.Errorf("link team to club: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", teamID, "club_id", input.ClubID)

	return item, nil
}

func (s *TeamService) Update(ctx context.Context, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	existing, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		existing.Name = name
	}
	if ageGroup := strings.TrimSpace(input.AgeGroup); ageGroup != "" {
		existing.AgeGroup = ageGroup
	}
	if input.GameFormat != "" {
		existing.GameFormat = input.GameFormat
	}
	existing.UpdatedAt = s.now().UTC()

	if err := existing.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, existing); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return existing, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListByClub(ctx context.Context, clubID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list teams by club: %w", err)
	}

	return items, nil
}

func (s *TeamService) ListByYearGroup(ctx context.Context, yearGroupID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByYearGroup")
	defer span.End()

	yearGroupID = strings.TrimSpace(yearGroupID)
	if yearGroupID == "" {
		return nil, fmt.Errorf("%w: year group id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByYearGroup(ctx, yearGroupID)
	if err != nil {
		return nil, fmt.Errorf("list teams by year group: %w", err)
	}

	return items, nil
}

// Delete removes a team. Teams that still have players cannot be deleted;
// their players must be reassigned first.
func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list players before team delete: %w", err)
	}
	if len(players) > 0 {
		return fmt.Errorf("%w: team %s still has %d players", ErrPolicyViolation, teamID, len(players))
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)

	return nil
}
