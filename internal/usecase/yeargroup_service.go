package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/grassrootshq/teamdesk/internal/domain/club"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/roster"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
	idgen "github.com/grassrootshq/teamdesk/internal/platform/id"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

const defaultSplitWorkers = 4

type CreateYearGroupInput struct {
	ClubID          string
	Name            string
	AgeYear         int
	PlayingFormat   string
	SoftPlayerLimit int
}

type UpdateYearGroupInput struct {
	YearGroupID     string
	Name            string
	PlayingFormat   string
	SoftPlayerLimit *int
}

// SplitInput drives the year-group split wizard. Players from the source
// team are partitioned across NewTeamNames; ManualAssignments overrides the
// automatic distribution per player (values are zero-based team indexes).
type SplitInput struct {
	YearGroupID       string
	SourceTeamID      string
	NewTeamNames      []string
	GameFormat        team.GameFormat
	ManualAssignments map[string]int
	MaxWorkers        int
}

// SplitResult reports what the wizard committed. On partial failure the
// created teams and already-moved players stay committed; FailedPlayerIDs
// names the players whose reassignment did not land.
type SplitResult struct {
	YearGroup       yeargroup.YearGroup
	Teams           []team.Team
	MovedCount      int
	FailedPlayerIDs []string
	Warnings        []string
}

type YearGroupService struct {
	clubRepo      club.Repository
	teamRepo      team.Repository
	playerRepo    player.Repository
	yearGroupRepo yeargroup.Repository
	idGen         idgen.Generator
	splitWorkers  int
	logger        *logging.Logger
	now           func() time.Time
}

func NewYearGroupService(
	clubRepo club.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	yearGroupRepo yeargroup.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *YearGroupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &YearGroupService{
		clubRepo:      clubRepo,
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		yearGroupRepo: yearGroupRepo,
		idGen:         idGen,
		splitWorkers:  defaultSplitWorkers,
		logger:        logger,
		now:           time.Now,
	}
}

// SetSplitWorkers overrides the default worker pool size used by Split when
// the caller does not pass an explicit MaxWorkers.
func (s *YearGroupService) SetSplitWorkers(n int) {
	if n > 0 {
		s.splitWorkers = n
	}
}

func (s *YearGroupService) Create(ctx context.Context, input CreateYearGroupInput) (yeargroup.YearGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.Create")
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ClubID == "" {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: year group name is required", ErrInvalidInput)
	}

	if _, exists, err := s.clubRepo.GetByID(ctx, input.ClubID); err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("get club by id: %w", err)
	} else if !exists {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: club=%s", ErrNotFound, input.ClubID)
	}

	groupID, err := s.idGen.NewID()
	if err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("generate year group id: %w", err)
	}

	now := s.now().UTC()
	item := yeargroup.YearGroup{
		ID:              groupID,
		ClubID:          input.ClubID,
		Name:            input.Name,
		AgeYear:         input.AgeYear,
		PlayingFormat:   strings.TrimSpace(input.PlayingFormat),
		SoftPlayerLimit: input.SoftPlayerLimit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := item.Validate(); err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.yearGroupRepo.Insert(ctx, item); err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("insert year group: %w", err)
	}

	s.logger.InfoContext(ctx, "year group created", "year_group_id", groupID, "club_id", input.ClubID)

	return item, nil
}

func (s *YearGroupService) Update(ctx context.Context, input UpdateYearGroupInput) (yeargroup.YearGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.Update")
	defer span.End()

	input.YearGroupID = strings.TrimSpace(input.YearGroupID)
	if input.YearGroupID == "" {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: year group id is required", ErrInvalidInput)
	}

	existing, exists, err := s.yearGroupRepo.GetByID(ctx, input.YearGroupID)
	if err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("get year group by id: %w", err)
	}
	if !exists {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: year group=%s", ErrNotFound, input.YearGroupID)
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		existing.Name = name
	}
	if format := strings.TrimSpace(input.PlayingFormat); format != "" {
		existing.PlayingFormat = format
	}
	if input.SoftPlayerLimit != nil {
		existing.SoftPlayerLimit = *input.SoftPlayerLimit
	}
	existing.UpdatedAt = s.now().UTC()

	if err := existing.Validate(); err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.yearGroupRepo.Update(ctx, existing); err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("update year group: %w", err)
	}

	return existing, nil
}

func (s *YearGroupService) GetByID(ctx context.Context, yearGroupID string) (yeargroup.YearGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.GetByID")
	defer span.End()

	yearGroupID = strings.TrimSpace(yearGroupID)
	if yearGroupID == "" {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: year group id is required", ErrInvalidInput)
	}

	item, exists, err := s.yearGroupRepo.GetByID(ctx, yearGroupID)
	if err != nil {
		return yeargroup.YearGroup{}, fmt.Errorf("get year group by id: %w", err)
	}
	if !exists {
		return yeargroup.YearGroup{}, fmt.Errorf("%w: year group=%s", ErrNotFound, yearGroupID)
	}

	return item, nil
}

func (s *YearGroupService) ListByClub(ctx context.Context, clubID string) ([]yeargroup.YearGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.ListByClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	items, err := s.yearGroupRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list year groups by club: %w", err)
	}

	return items, nil
}

// Delete removes a year group that no longer aggregates any teams.
func (s *YearGroupService) Delete(ctx context.Context, yearGroupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.Delete")
	defer span.End()

	yearGroupID = strings.TrimSpace(yearGroupID)
	if yearGroupID == "" {
		return fmt.Errorf("%w: year group id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByYearGroup(ctx, yearGroupID)
	if err != nil {
		return fmt.Errorf("list teams before year group delete: %w", err)
	}
	if len(teams) > 0 {
		return fmt.Errorf("%w: year group %s still has %d teams", ErrPolicyViolation, yearGroupID, len(teams))
	}

	if err := s.yearGroupRepo.Delete(ctx, yearGroupID); err != nil {
		return fmt.Errorf("delete year group: %w", err)
	}

	return nil
}

// Split runs the roster split wizard: partition the source team's players
// across new teams, create the teams, move the players, link the teams to
// the club. There is no transaction across the steps; a failure mid-way
// leaves earlier writes committed and is surfaced to the caller, who re-runs
// the move for the reported players.
func (s *YearGroupService) Split(ctx context.Context, input SplitInput) (SplitResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.YearGroupService.Split")
	defer span.End()

	input.YearGroupID = strings.TrimSpace(input.YearGroupID)
	input.SourceTeamID = strings.TrimSpace(input.SourceTeamID)
	if input.YearGroupID == "" || input.SourceTeamID == "" {
		return SplitResult{}, fmt.Errorf("%w: year group id and source team id are required", ErrInvalidInput)
	}
	names := make([]string, 0, len(input.NewTeamNames))
	for _, name := range input.NewTeamNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return SplitResult{}, fmt.Errorf("%w: team names cannot be empty", ErrInvalidInput)
		}
		names = append(names, name)
	}
	if len(names) < roster.MinTeamCount {
		return SplitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, roster.ErrTooFewTeams)
	}

	group, exists, err := s.yearGroupRepo.GetByID(ctx, input.YearGroupID)
	if err != nil {
		return SplitResult{}, fmt.Errorf("get year group by id: %w", err)
	}
	if !exists {
		return SplitResult{}, fmt.Errorf("%w: year group=%s", ErrNotFound, input.YearGroupID)
	}

	source, exists, err := s.teamRepo.GetByID(ctx, input.SourceTeamID)
	if err != nil {
		return SplitResult{}, fmt.Errorf("get source team by id: %w", err)
	}
	if !exists {
		return SplitResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.SourceTeamID)
	}

	pool, err := s.playerRepo.ListByTeam(ctx, input.SourceTeamID)
	if err != nil {
		return SplitResult{}, fmt.Errorf("list source team players: %w", err)
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].SquadNumber < pool[j].SquadNumber })

	playerIDs := make([]string, 0, len(pool))
	for _, p := range pool {
		playerIDs = append(playerIDs, p.ID)
	}

	plan, err := roster.AutoDistribute(playerIDs, len(names))
	if err != nil {
		return SplitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for playerID, teamIndex := range input.ManualAssignments {
		if _, ok := plan.TeamOf(playerID); !ok {
			return SplitResult{}, fmt.Errorf("%w: player %s is not in the source team", ErrInvalidInput, playerID)
		}
		if err := plan.Assign(playerID, teamIndex); err != nil {
			return SplitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	format := input.GameFormat
	if format == "" {
		format = source.GameFormat
	}

	now := s.now().UTC()
	teams := make([]team.Team, 0, len(names))
	for _, name := range names {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return SplitResult{}, fmt.Errorf("generate team id: %w", err)
		}
		item := team.Team{
			ID:          teamID,
			ClubID:      group.ClubID,
			Name:        name,
			AgeGroup:    source.AgeGroup,
			GameFormat:  format,
			YearGroupID: group.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := item.Validate(); err != nil {
			return SplitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		teams = append(teams, item)
	}

	if err := s.teamRepo.Insert(ctx, teams); err != nil {
		return SplitResult{}, fmt.Errorf("insert split teams: %w", err)
	}

	result := SplitResult{YearGroup: group, Teams: teams}
	moved, failedIDs, err := s.movePlayers(ctx, plan, teams, input.MaxWorkers)
	result.MovedCount = moved
	result.FailedPlayerIDs = failedIDs
	if err != nil {
		return result, err
	}

	for _, item := range teams {
		if err := s.clubRepo.LinkTeam(ctx, group.ClubID, item.ID); err != nil {
			return result, fmt.Errorf("link team %s to club: %w", item.ID, err)
		}
	}

	for idx, item := range teams {
		if group.OverSoftLimit(len(plan.Team(idx))) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("team %s has %d players, over the year group limit of %d",
					item.Name, len(plan.Team(idx)), group.SoftPlayerLimit))
		}
	}

	s.logger.InfoContext(ctx, "year group split completed",
		"year_group_id", group.ID, "source_team_id", source.ID,
		"new_teams", len(teams), "moved_players", result.MovedCount)

	return result, nil
}

// movePlayers fans the per-player team updates out over a worker pool. Each
// update is independent, so failures are collected rather than aborting the
// batch.
func (s *YearGroupService) movePlayers(ctx context.Context, plan *roster.Plan, teams []team.Team, maxWorkers int) (int, []string, error) {
	type move struct {
		playerID string
		teamID   string
	}

	var moves []move
	for idx, item := range teams {
		for _, playerID := range plan.Team(idx) {
			moves = append(moves, move{playerID: playerID, teamID: item.ID})
		}
	}
	if len(moves) == 0 {
		return 0, nil, nil
	}

	workerCount := maxWorkers
	if workerCount <= 0 {
		workerCount = s.splitWorkers
	}
	if workerCount > len(moves) {
		workerCount = len(moves)
	}

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return 0, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	failures := make(chan string, len(moves))
	var movedCount atomic.Int32

	var workers sync.WaitGroup
	for _, m := range moves {
		m := m
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			if err := s.playerRepo.UpdateTeam(ctx, m.playerID, m.teamID); err != nil {
				s.logger.ErrorContext(ctx, "player reassignment failed",
					"player_id", m.playerID, "team_id", m.teamID, "error", err)
				failures <- m.playerID
				return
			}
			movedCount.Add(1)
		}); err != nil {
			workers.Done()
			return int(movedCount.Load()), nil, fmt.Errorf("submit move to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	var failedIDs []string
	for playerID := range failures {
		failedIDs = append(failedIDs, playerID)
	}
	sort.Strings(failedIDs)

	if len(failedIDs) > 0 {
		return int(movedCount.Load()), failedIDs,
			fmt.Errorf("reassign players: %d of %d moves failed", len(failedIDs), len(moves))
	}

	return int(movedCount.Load()), nil, nil
}
