package roster

import (
	"errors"
	"fmt"
)

// MinTeamCount is the policy floor for a year-group split. Fewer than two
// destination teams is rejected before any distribution happens.
const MinTeamCount = 2

var (
	ErrTooFewTeams = errors.New("a split needs at least 2 destination teams")
	ErrNoPlayers   = errors.New("no players to distribute")
)

// Plan holds a proposed partition of a player pool across destination teams.
// Team indexes are zero-based and stable for the life of the plan.
type Plan struct {
	assignments map[int][]string
	teamCount   int
}

// AutoDistribute partitions playerIDs across teamCount teams in contiguous,
// near-equal blocks of ceil(n/teamCount), preserving the given player order.
// The last team may receive a short block when the division is uneven; that
// is accepted, not corrected.
func AutoDistribute(playerIDs []string, teamCount int) (*Plan, error) {
	if teamCount < MinTeamCount {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTeams, teamCount)
	}
	if len(playerIDs) == 0 {
		return nil, ErrNoPlayers
	}

	perTeam := (len(playerIDs) + teamCount - 1) / teamCount
	assignments := make(map[int][]string, teamCount)
	for i, playerID := range playerIDs {
		teamIndex := (i / perTeam) % teamCount
		assignments[teamIndex] = append(assignments[teamIndex], playerID)
	}

	return &Plan{assignments: assignments, teamCount: teamCount}, nil
}

// NewPlan builds an empty plan for manual assignment only.
func NewPlan(teamCount int) (*Plan, error) {
	if teamCount < MinTeamCount {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTeams, teamCount)
	}

	return &Plan{assignments: make(map[int][]string, teamCount), teamCount: teamCount}, nil
}

// Assign moves a player to the given team. The player is removed from every
// other team's list first, so a player can never appear in two destinations.
func (p *Plan) Assign(playerID string, teamIndex int) error {
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	if teamIndex < 0 || teamIndex >= p.teamCount {
		return fmt.Errorf("team index %d out of range [0,%d)", teamIndex, p.teamCount)
	}

	for idx, ids := range p.assignments {
		filtered := ids[:0]
		for _, id := range ids {
			if id != playerID {
				filtered = append(filtered, id)
			}
		}
		p.assignments[idx] = filtered
	}
	p.assignments[teamIndex] = append(p.assignments[teamIndex], playerID)

	return nil
}

// Team returns the ordered player ids currently assigned to teamIndex.
func (p *Plan) Team(teamIndex int) []string {
	return append([]string(nil), p.assignments[teamIndex]...)
}

// TeamCount returns the number of destination teams in the plan.
func (p *Plan) TeamCount() int {
	return p.teamCount
}

// TeamOf reports which team currently holds the player, if any.
func (p *Plan) TeamOf(playerID string) (int, bool) {
	for idx := 0; idx < p.teamCount; idx++ {
		for _, id := range p.assignments[idx] {
			if id == playerID {
				return idx, true
			}
		}
	}

	return 0, false
}

// Complete reports whether every player is assigned: the sum of all team
// sizes equals totalPlayers. Duplicates are structurally impossible because
// Assign removes before it appends.
func (p *Plan) Complete(totalPlayers int) bool {
	assigned := 0
	for idx := 0; idx < p.teamCount; idx++ {
		assigned += len(p.assignments[idx])
	}

	return assigned == totalPlayers
}
