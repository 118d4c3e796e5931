package squad

import (
	"fmt"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
)

// Role is a player's role within one event squad.
type Role string

const (
	RolePlayer      Role = "player"
	RoleCaptain     Role = "captain"
	RoleViceCaptain Role = "vice_captain"
)

// Squad is the subset of a team's players chosen for one event.
type Squad struct {
	EventID       string
	TeamID        string
	PlayerIDs     []string
	CaptainID     string
	ViceCaptainID string
	UpdatedAt     time.Time
}

func (s Squad) Validate() error {
	if s.EventID == "" {
		return fmt.Errorf("squad event id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("squad team id is required")
	}

	seen := make(map[string]struct{}, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if id == "" {
			return fmt.Errorf("squad player id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("player %s appears twice in squad", id)
		}
		seen[id] = struct{}{}
	}

	if s.CaptainID != "" {
		if _, ok := seen[s.CaptainID]; !ok {
			return fmt.Errorf("captain %s is not a squad member", s.CaptainID)
		}
	}
	if s.ViceCaptainID != "" {
		if _, ok := seen[s.ViceCaptainID]; !ok {
			return fmt.Errorf("vice captain %s is not a squad member", s.ViceCaptainID)
		}
	}

	return nil
}

// Contains reports squad membership.
func (s Squad) Contains(playerID string) bool {
	for _, id := range s.PlayerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}

// RoleOf resolves the squad role for a member.
func (s Squad) RoleOf(playerID string) Role {
	switch playerID {
	case s.CaptainID:
		return RoleCaptain
	case s.ViceCaptainID:
		return RoleViceCaptain
	default:
		return RolePlayer
	}
}

// SquadPlayer is the view model shown on squad screens: the player joined
// with their effective availability and squad role.
type SquadPlayer struct {
	Player       player.Player
	Availability availability.Status
	Role         Role
}
