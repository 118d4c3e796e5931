package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
)

type teamRepoMock struct {
	mock.Mock
}

func newTeamRepoMock(t *testing.T) *teamRepoMock {
	m := &teamRepoMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *teamRepoMock) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(team.Team), args.Bool(1), args.Error(2)
}

func (m *teamRepoMock) ListByClub(ctx context.Context, clubID string) ([]team.Team, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]team.Team), args.Error(1)
}

func (m *teamRepoMock) ListByYearGroup(ctx context.Context, yearGroupID string) ([]team.Team, error) {
	args := m.Called(ctx, yearGroupID)
	return args.Get(0).([]team.Team), args.Error(1)
}

func (m *teamRepoMock) Insert(ctx context.Context, items []team.Team) error {
	return m.Called(ctx, items).Error(0)
}

func (m *teamRepoMock) Update(ctx context.Context, item team.Team) error {
	return m.Called(ctx, item).Error(0)
}

func (m *teamRepoMock) Delete(ctx context.Context, teamID string) error {
	return m.Called(ctx, teamID).Error(0)
}

type eventRepoMock struct {
	mock.Mock
}

func newEventRepoMock(t *testing.T) *eventRepoMock {
	m := &eventRepoMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *eventRepoMock) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(event.Event), args.Bool(1), args.Error(2)
}

func (m *eventRepoMock) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *eventRepoMock) Insert(ctx context.Context, item event.Event) error {
	return m.Called(ctx, item).Error(0)
}

func (m *eventRepoMock) Update(ctx context.Context, item event.Event) error {
	return m.Called(ctx, item).Error(0)
}

func (m *eventRepoMock) Delete(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

func TestEventService_ListByTeam_SuccessUsingMocks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := newTeamRepoMock(t)
	eventRepo := newEventRepoMock(t)

	service := NewEventService(teamRepo, eventRepo, nil, staticIDGenerator{id: "ev-100"}, logging.NewNop())
	teamID := "team-u10-lions"
	expected := []event.Event{
		{
			ID:     "ev-lions-training",
			TeamID: teamID,
			Title:  "Tuesday Training",
			Type:   event.TypeTraining,
			Date:   time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		},
		{
			ID:     "ev-lions-match",
			TeamID: teamID,
			Title:  "Saturday Match",
			Type:   event.TypeMatch,
			Date:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
	}

	eventRepo.
		On("ListByTeam", mock.MatchedBy(func(v context.Context) bool { return v != nil }), teamID).
		Return(expected, nil).
		Once()

	got, err := service.ListByTeam(ctx, teamID)
	if err != nil {
		t.Fatalf("list events by team: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected event count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected event id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestEventService_Create_TeamLookupFailureUsingMocks(t *testing.T) {
	t.Parallel()

	teamRepo := newTeamRepoMock(t)
	eventRepo := newEventRepoMock(t)

	service := NewEventService(teamRepo, eventRepo, nil, staticIDGenerator{id: "ev-101"}, logging.NewNop())
	repoErr := errors.New("connection reset")

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "team-u10-lions").
		Return(team.Team{}, false, repoErr).
		Once()

	_, err := service.Create(context.Background(), CreateEventInput{
		TeamID: "team-u10-lions",
		Title:  "Saturday Match",
		Type:   event.TypeMatch,
		Date:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
