package availability

import (
	"fmt"
	"time"
)

// Status is a per-user, per-event, per-role attendance intent.
type Status string

const (
	StatusPending     Status = "pending"
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

var AllStatuses = map[Status]struct{}{
	StatusPending:     {},
	StatusAvailable:   {},
	StatusUnavailable: {},
}

// Role distinguishes the capacity in which a user responds to an event.
type Role string

const (
	RolePlayer Role = "player"
	RoleStaff  Role = "staff"
)

var AllRoles = map[Role]struct{}{
	RolePlayer: {},
	RoleStaff:  {},
}

// Record is one availability response. A user may hold one record per role
// for the same event; Aggregate folds them into a single effective status.
type Record struct {
	EventID   string
	UserID    string
	Role      Role
	Status    Status
	UpdatedAt time.Time
}

func (r Record) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("availability event id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("availability user id is required")
	}
	if _, ok := AllRoles[r.Role]; !ok {
		return fmt.Errorf("invalid availability role: %s", r.Role)
	}
	if _, ok := AllStatuses[r.Status]; !ok {
		return fmt.Errorf("invalid availability status: %s", r.Status)
	}

	return nil
}

// Rank orders statuses for display: available first, then pending, then
// unavailable, with anything unknown last. Every list that shows squad
// players sorts through this single ranking.
func Rank(s Status) int {
	switch s {
	case StatusAvailable:
		return 1
	case StatusPending:
		return 2
	case StatusUnavailable:
		return 3
	default:
		return 4
	}
}
