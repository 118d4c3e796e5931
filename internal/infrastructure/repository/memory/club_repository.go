package memory

import (
	"context"
	"sync"

	"github.com/grassrootshq/teamdesk/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	items map[string]club.Club
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	items := make(map[string]club.Club, len(clubs))
	for _, c := range clubs {
		items[c.ID] = cloneClub(c)
	}

	return &ClubRepository{items: items}
}

func (r *ClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[clubID]
	if !ok {
		return club.Club{}, false, nil
	}

	return cloneClub(c), true, nil
}

func (r *ClubRepository) Insert(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneClub(item)

	return nil
}

func (r *ClubRepository) LinkTeam(_ context.Context, clubID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[clubID]
	if !ok {
		return nil
	}
	if c.HasTeam(teamID) {
		return nil
	}
	c.TeamIDs = append(append([]string(nil), c.TeamIDs...), teamID)
	r.items[clubID] = c

	return nil
}

func (r *ClubRepository) ListTeamIDs(_ context.Context, clubID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[clubID]
	if !ok {
		return nil, nil
	}

	return append([]string(nil), c.TeamIDs...), nil
}

func cloneClub(c club.Club) club.Club {
	c.TeamIDs = append([]string(nil), c.TeamIDs...)

	return c
}
