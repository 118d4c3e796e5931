package squad

import (
	"sort"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
)

// Less is the one display ordering for squad players everywhere in the app:
// availability rank first (available, pending, unavailable, unknown), then
// squad number ascending. Keeping it in one place stops the call sites from
// drifting apart.
func Less(a, b SquadPlayer) bool {
	ra, rb := availability.Rank(a.Availability), availability.Rank(b.Availability)
	if ra != rb {
		return ra < rb
	}

	return a.Player.SquadNumber < b.Player.SquadNumber
}

// SortPlayers sorts in place using Less.
func SortPlayers(players []SquadPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return Less(players[i], players[j])
	})
}
