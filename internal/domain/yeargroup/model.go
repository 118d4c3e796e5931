package yeargroup

import (
	"fmt"
	"time"
)

// YearGroup is an age-cohort grouping that aggregates zero or more teams.
// Teams point back at the year group; the group does not own them.
type YearGroup struct {
	ID              string
	ClubID          string
	Name            string
	AgeYear         int
	PlayingFormat   string
	SoftPlayerLimit int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (g YearGroup) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("year group id is required")
	}
	if g.ClubID == "" {
		return fmt.Errorf("year group club id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("year group name is required")
	}
	if g.SoftPlayerLimit < 0 {
		return fmt.Errorf("soft player limit cannot be negative")
	}

	return nil
}

// OverSoftLimit reports whether count exceeds the advisory player limit.
// The limit is never enforced; callers surface it as a warning only.
func (g YearGroup) OverSoftLimit(count int) bool {
	return g.SoftPlayerLimit > 0 && count > g.SoftPlayerLimit
}
