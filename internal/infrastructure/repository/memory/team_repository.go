package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))
	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{items: items, orders: orders}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) ListByClub(_ context.Context, clubID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []team.Team
	for _, id := range r.orders {
		if t := r.items[id]; t.ClubID == clubID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TeamRepository) ListByYearGroup(_ context.Context, yearGroupID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []team.Team
	for _, id := range r.orders {
		if t := r.items[id]; t.YearGroupID == yearGroupID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TeamRepository) Insert(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range items {
		if _, exists := r.items[t.ID]; !exists {
			r.orders = append(r.orders, t.ID)
		}
		r.items[t.ID] = t
	}

	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, teamID)
	for i, id := range r.orders {
		if id == teamID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
