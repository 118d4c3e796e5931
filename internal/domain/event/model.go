package event

import (
	"fmt"
	"time"
)

// Type classifies a calendar event.
type Type string

const (
	TypeTraining Type = "training"
	TypeMatch    Type = "match"
	TypeFixture  Type = "fixture"
	TypeFriendly Type = "friendly"
)

var AllTypes = map[Type]struct{}{
	TypeTraining: {},
	TypeMatch:    {},
	TypeFixture:  {},
	TypeFriendly: {},
}

// Event is one calendar entry for a team. Split-squad events carry
// multiple concurrent selections, one per (period, team number).
type Event struct {
	ID        string
	TeamID    string
	Title     string
	Type      Type
	Date      time.Time
	Location  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("event team id is required")
	}
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if _, ok := AllTypes[e.Type]; !ok {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("event date is required")
	}

	return nil
}

// IsMatchDay reports whether the event involves opposition and therefore
// applies subscription-based match eligibility.
func (e Event) IsMatchDay() bool {
	switch e.Type {
	case TypeMatch, TypeFixture, TypeFriendly:
		return true
	default:
		return false
	}
}
