package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
)

type EventRepository struct {
	mu     sync.RWMutex
	items  map[string]event.Event
	orders []string
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(events))
	orders := make([]string, 0, len(events))
	for _, e := range events {
		items[e.ID] = e
		orders = append(orders, e.ID)
	}

	return &EventRepository{items: items, orders: orders}
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return e, true, nil
}

func (r *EventRepository) ListByTeam(_ context.Context, teamID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []event.Event
	for _, id := range r.orders {
		if e := r.items[id]; e.TeamID == teamID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EventRepository) Insert(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *EventRepository) Update(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *EventRepository) Delete(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, eventID)
	for i, id := range r.orders {
		if id == eventID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
