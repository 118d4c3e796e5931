package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
)

type YearGroupRepository struct {
	mu     sync.RWMutex
	items  map[string]yeargroup.YearGroup
	orders []string
}

func NewYearGroupRepository(groups []yeargroup.YearGroup) *YearGroupRepository {
	items := make(map[string]yeargroup.YearGroup, len(groups))
	orders := make([]string, 0, len(groups))
	for _, g := range groups {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &YearGroupRepository{items: items, orders: orders}
}

func (r *YearGroupRepository) GetByID(_ context.Context, yearGroupID string) (yeargroup.YearGroup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[yearGroupID]
	if !ok {
		return yeargroup.YearGroup{}, false, nil
	}

	return g, true, nil
}

func (r *YearGroupRepository) ListByClub(_ context.Context, clubID string) ([]yeargroup.YearGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []yeargroup.YearGroup
	for _, id := range r.orders {
		if g := r.items[id]; g.ClubID == clubID {
			out = append(out, g)
		}
	}

	return out, nil
}

func (r *YearGroupRepository) Insert(_ context.Context, item yeargroup.YearGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *YearGroupRepository) Update(_ context.Context, item yeargroup.YearGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *YearGroupRepository) Delete(_ context.Context, yearGroupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, yearGroupID)
	for i, id := range r.orders {
		if id == yearGroupID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
