package selection

import (
	"fmt"
	"time"
)

// PlayerPosition pins one player to one named pitch position.
type PlayerPosition struct {
	PlayerID string
	Position string
}

// StaffAssignment is one staff member's role for the selection.
type StaffAssignment struct {
	UserID string
	Role   string
}

// Selection is the player/position/captain/staff choice for one team for one
// period of one event. Split-squad events carry several selections keyed by
// (period, team number).
type Selection struct {
	ID              string
	EventID         string
	TeamID          string
	Period          int
	TeamNumber      int
	FormationID     string
	PlayerPositions []PlayerPosition
	Substitutes     []string
	CaptainID       string
	Staff           []StaffAssignment
	UpdatedAt       time.Time
}

func (s Selection) Validate() error {
	if s.EventID == "" {
		return fmt.Errorf("selection event id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("selection team id is required")
	}
	if s.Period < 1 {
		return fmt.Errorf("selection period must be >= 1")
	}
	if s.TeamNumber < 1 {
		return fmt.Errorf("selection team number must be >= 1")
	}

	seen := make(map[string]struct{}, len(s.PlayerPositions)+len(s.Substitutes))
	for _, pp := range s.PlayerPositions {
		if pp.PlayerID == "" {
			return fmt.Errorf("positioned player id cannot be empty")
		}
		if _, dup := seen[pp.PlayerID]; dup {
			return fmt.Errorf("player %s appears twice in selection", pp.PlayerID)
		}
		seen[pp.PlayerID] = struct{}{}
	}
	for _, id := range s.Substitutes {
		if id == "" {
			return fmt.Errorf("substitute player id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("player %s appears twice in selection", id)
		}
		seen[id] = struct{}{}
	}

	if s.CaptainID != "" {
		if _, ok := seen[s.CaptainID]; !ok {
			return fmt.Errorf("captain %s is not part of the selection", s.CaptainID)
		}
	}

	return nil
}

// ContainsPlayer reports whether the player is in the starting positions or
// on the bench for this selection.
func (s Selection) ContainsPlayer(playerID string) bool {
	for _, pp := range s.PlayerPositions {
		if pp.PlayerID == playerID {
			return true
		}
	}
	for _, id := range s.Substitutes {
		if id == playerID {
			return true
		}
	}

	return false
}
