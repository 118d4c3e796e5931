package selection

import "github.com/grassrootshq/teamdesk/internal/domain/team"

// Formation is a named, ordered list of pitch position labels. The order is
// the fill order: the k-th selected player takes the k-th label.
type Formation struct {
	ID        string
	Positions []string
}

var formations = map[string]Formation{
	"4-4-2": {
		ID: "4-4-2",
		Positions: []string{
			"GK", "RB", "CB-R", "CB-L", "LB",
			"RM", "CM-R", "CM-L", "LM", "ST-R", "ST-L",
		},
	},
	"4-3-3": {
		ID: "4-3-3",
		Positions: []string{
			"GK", "RB", "CB-R", "CB-L", "LB",
			"CM-R", "CM", "CM-L", "RW", "ST", "LW",
		},
	},
	"3-5-2": {
		ID: "3-5-2",
		Positions: []string{
			"GK", "CB-R", "CB", "CB-L",
			"RWB", "CM-R", "CM", "CM-L", "LWB", "ST-R", "ST-L",
		},
	},
	"4-2-3-1": {
		ID: "4-2-3-1",
		Positions: []string{
			"GK", "RB", "CB-R", "CB-L", "LB",
			"CDM-R", "CDM-L", "RAM", "CAM", "LAM", "ST",
		},
	},
	"3-4-3": {
		ID: "3-4-3",
		Positions: []string{
			"GK", "CB-R", "CB", "CB-L",
			"RM", "CM-R", "CM-L", "LM", "RW", "ST", "LW",
		},
	},
}

// Small-sided defaults, used when the formation id is unknown or empty.
var defaultByFormat = map[team.GameFormat]Formation{
	team.Format5ASide: {
		ID:        "default-5",
		Positions: []string{"GK", "DEF", "MID-R", "MID-L", "ST"},
	},
	team.Format7ASide: {
		ID:        "default-7",
		Positions: []string{"GK", "DEF-R", "DEF-L", "MID-R", "MID-L", "ST-R", "ST-L"},
	},
	team.Format9ASide: {
		ID:        "default-9",
		Positions: []string{"GK", "RB", "CB", "LB", "RM", "CM", "LM", "ST-R", "ST-L"},
	},
	team.Format11ASide: formations["4-4-2"],
}

// FormationByID resolves a formation id, falling back to the default list
// for the game format. The bool reports whether the id was recognised.
func FormationByID(formationID string, format team.GameFormat) (Formation, bool) {
	if f, ok := formations[formationID]; ok {
		return f, true
	}
	if f, ok := defaultByFormat[format]; ok {
		return f, false
	}

	return defaultByFormat[team.Format11ASide], false
}

// FormationIDs lists the known 11-a-side formation ids.
func FormationIDs() []string {
	ids := make([]string, 0, len(formations))
	for id := range formations {
		ids = append(ids, id)
	}

	return ids
}

// PositionMap is the result of mapping an ordered pick list onto a formation.
type PositionMap struct {
	Formation  Formation
	Assigned   []PlayerPosition
	Unassigned []string
}

// Phase describes how far a selection's position fill has progressed. It is
// derived from counts on every call and never stored, so edits can always
// move a selection back and forth.
type Phase string

const (
	PhaseEmpty             Phase = "empty"
	PhasePartiallyAssigned Phase = "partially_assigned"
	PhaseFullyAssigned     Phase = "fully_assigned"
)

// MapToPositions maps the ordered player ids onto the formation's position
// labels strictly by index. Players beyond the label count are returned as
// Unassigned overflow for the UI, never dropped. Same input, same output.
func MapToPositions(formationID string, format team.GameFormat, orderedPlayerIDs []string) PositionMap {
	formation, _ := FormationByID(formationID, format)

	n := len(orderedPlayerIDs)
	if n > len(formation.Positions) {
		n = len(formation.Positions)
	}

	assigned := make([]PlayerPosition, 0, n)
	for i := 0; i < n; i++ {
		assigned = append(assigned, PlayerPosition{
			PlayerID: orderedPlayerIDs[i],
			Position: formation.Positions[i],
		})
	}

	var overflow []string
	if len(orderedPlayerIDs) > n {
		overflow = append([]string(nil), orderedPlayerIDs[n:]...)
	}

	return PositionMap{Formation: formation, Assigned: assigned, Unassigned: overflow}
}

// Phase reports the fill state of the mapping.
func (m PositionMap) Phase() Phase {
	switch {
	case len(m.Assigned) == 0:
		return PhaseEmpty
	case len(m.Assigned) < len(m.Formation.Positions):
		return PhasePartiallyAssigned
	default:
		return PhaseFullyAssigned
	}
}
