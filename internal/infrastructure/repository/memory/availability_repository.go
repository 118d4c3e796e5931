package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
)

type availabilityKey struct {
	eventID string
	userID  string
	role    availability.Role
}

type AvailabilityRepository struct {
	mu     sync.RWMutex
	items  map[availabilityKey]availability.Record
	orders []availabilityKey
}

func NewAvailabilityRepository(records []availability.Record) *AvailabilityRepository {
	items := make(map[availabilityKey]availability.Record, len(records))
	orders := make([]availabilityKey, 0, len(records))
	for _, rec := range records {
		key := availabilityKey{eventID: rec.EventID, userID: rec.UserID, role: rec.Role}
		items[key] = rec
		orders = append(orders, key)
	}

	return &AvailabilityRepository{items: items, orders: orders}
}

func (r *AvailabilityRepository) ListByEvent(_ context.Context, eventID string) ([]availability.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []availability.Record
	for _, key := range r.orders {
		if key.eventID == eventID {
			out = append(out, r.items[key])
		}
	}

	return out, nil
}

func (r *AvailabilityRepository) ListByUser(_ context.Context, userID string) ([]availability.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []availability.Record
	for _, key := range r.orders {
		if key.userID == userID {
			out = append(out, r.items[key])
		}
	}

	return out, nil
}

func (r *AvailabilityRepository) Upsert(_ context.Context, record availability.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := availabilityKey{eventID: record.EventID, userID: record.UserID, role: record.Role}
	if _, exists := r.items[key]; !exists {
		r.orders = append(r.orders, key)
	}
	r.items[key] = record

	return nil
}

func (r *AvailabilityRepository) Delete(_ context.Context, eventID, userID string, role availability.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := availabilityKey{eventID: eventID, userID: userID, role: role}
	delete(r.items, key)
	for i, k := range r.orders {
		if k == key {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
