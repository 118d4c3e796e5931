package club

import "fmt"

// Club is the top-level organisation. It carries a denormalised list of its
// team ids so club dashboards can resolve membership without a join.
type Club struct {
	ID      string
	Name    string
	TeamIDs []string
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}

	return nil
}

// HasTeam reports whether the team is already linked to the club.
func (c Club) HasTeam(teamID string) bool {
	for _, id := range c.TeamIDs {
		if id == teamID {
			return true
		}
	}

	return false
}
