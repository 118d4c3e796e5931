package selection

import "fmt"

// FindConflicts reports every other selection for the same event that already
// contains the player, as "Team {n} Period {p}" labels for the UI warning. The
// selection being edited is excluded by (period, team number). Read-only.
func FindConflicts(playerID string, candidates []Selection, excludePeriod, excludeTeamNumber int) []string {
	if playerID == "" {
		return nil
	}

	var labels []string
	for _, cand := range candidates {
		if cand.Period == excludePeriod && cand.TeamNumber == excludeTeamNumber {
			continue
		}
		if cand.ContainsPlayer(playerID) {
			labels = append(labels, fmt.Sprintf("Team %d Period %d", cand.TeamNumber, cand.Period))
		}
	}

	return labels
}
