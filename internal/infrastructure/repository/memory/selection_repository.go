package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
)

type selectionKey struct {
	eventID    string
	teamID     string
	period     int
	teamNumber int
}

type SelectionRepository struct {
	mu     sync.RWMutex
	items  map[selectionKey]selection.Selection
	orders []selectionKey
}

func NewSelectionRepository(selections []selection.Selection) *SelectionRepository {
	items := make(map[selectionKey]selection.Selection, len(selections))
	orders := make([]selectionKey, 0, len(selections))
	for _, sel := range selections {
		key := keyOf(sel)
		items[key] = cloneSelection(sel)
		orders = append(orders, key)
	}

	return &SelectionRepository{items: items, orders: orders}
}

func (r *SelectionRepository) Get(_ context.Context, eventID, teamID string, period, teamNumber int) (selection.Selection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.items[selectionKey{eventID: eventID, teamID: teamID, period: period, teamNumber: teamNumber}]
	if !ok {
		return selection.Selection{}, false, nil
	}

	return cloneSelection(sel), true, nil
}

func (r *SelectionRepository) ListByEvent(_ context.Context, eventID string) ([]selection.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []selection.Selection
	for _, key := range r.orders {
		if key.eventID == eventID {
			out = append(out, cloneSelection(r.items[key]))
		}
	}

	return out, nil
}

func (r *SelectionRepository) Upsert(_ context.Context, item selection.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(item)
	if _, exists := r.items[key]; !exists {
		r.orders = append(r.orders, key)
	}
	r.items[key] = cloneSelection(item)

	return nil
}

func (r *SelectionRepository) Delete(_ context.Context, eventID, teamID string, period, teamNumber int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := selectionKey{eventID: eventID, teamID: teamID, period: period, teamNumber: teamNumber}
	delete(r.items, key)
	for i, k := range r.orders {
		if k == key {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func keyOf(sel selection.Selection) selectionKey {
	return selectionKey{eventID: sel.EventID, teamID: sel.TeamID, period: sel.Period, teamNumber: sel.TeamNumber}
}

func cloneSelection(sel selection.Selection) selection.Selection {
	sel.PlayerPositions = append([]selection.PlayerPosition(nil), sel.PlayerPositions...)
	sel.Substitutes = append([]string(nil), sel.Substitutes...)
	sel.Staff = append([]selection.StaffAssignment(nil), sel.Staff...)

	return sel
}
