package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/squad"
)

type squadKey struct {
	eventID string
	teamID  string
}

type SquadRepository struct {
	mu    sync.RWMutex
	items map[squadKey]squad.Squad
}

func NewSquadRepository(squads []squad.Squad) *SquadRepository {
	items := make(map[squadKey]squad.Squad, len(squads))
	for _, sq := range squads {
		items[squadKey{eventID: sq.EventID, teamID: sq.TeamID}] = cloneSquad(sq)
	}

	return &SquadRepository{items: items}
}

func (r *SquadRepository) GetByEventAndTeam(_ context.Context, eventID, teamID string) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sq, ok := r.items[squadKey{eventID: eventID, teamID: teamID}]
	if !ok {
		return squad.Squad{}, false, nil
	}

	return cloneSquad(sq), true, nil
}

func (r *SquadRepository) Upsert(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[squadKey{eventID: item.EventID, teamID: item.TeamID}] = cloneSquad(item)

	return nil
}

func (r *SquadRepository) Delete(_ context.Context, eventID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, squadKey{eventID: eventID, teamID: teamID})

	return nil
}

func cloneSquad(sq squad.Squad) squad.Squad {
	sq.PlayerIDs = append([]string(nil), sq.PlayerIDs...)

	return sq
}
