package squad

import (
	"errors"
	"fmt"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
)

var (
	ErrPlayerDeclined   = errors.New("player has declined this event")
	ErrNotSquadMember   = errors.New("player is not a squad member")
	ErrAlreadyInSquad   = errors.New("player is already in the squad")
	ErrEmptyPlayerID    = errors.New("player id is required")
	ErrCaptainNotMember = errors.New("captain must be a squad member")
)

// CanAdmit decides whether a player with the given effective availability may
// join a squad. A coach may provisionally add a player who has not responded
// yet, but never one who declined.
func CanAdmit(status availability.Status) bool {
	return status != availability.StatusUnavailable
}

// AddPlayer returns a squad with the player appended, applying the admission
// policy against the player's effective availability.
func AddPlayer(s Squad, playerID string, status availability.Status) (Squad, error) {
	if playerID == "" {
		return s, ErrEmptyPlayerID
	}
	if s.Contains(playerID) {
		return s, fmt.Errorf("%w: %s", ErrAlreadyInSquad, playerID)
	}
	if !CanAdmit(status) {
		return s, fmt.Errorf("%w: %s", ErrPlayerDeclined, playerID)
	}

	next := clone(s)
	next.PlayerIDs = append(next.PlayerIDs, playerID)

	return next, nil
}

// SetCaptain assigns the captain in a single transition. When the player is
// not yet a member they join the squad and become captain in the same step,
// so no intermediate "captain but not in squad" state is ever observable.
// An empty player id clears the captaincy. Availability is the player's
// effective status, consulted only when the captain also has to be admitted.
func SetCaptain(s Squad, playerID string, status availability.Status) (Squad, error) {
	next := clone(s)
	if playerID == "" {
		next.CaptainID = ""
		return next, nil
	}

	if !next.Contains(playerID) {
		if !CanAdmit(status) {
			return s, fmt.Errorf("%w: %s", ErrPlayerDeclined, playerID)
		}
		next.PlayerIDs = append(next.PlayerIDs, playerID)
	}
	next.CaptainID = playerID
	if next.ViceCaptainID == playerID {
		next.ViceCaptainID = ""
	}

	return next, nil
}

// RemoveFromSquad drops the player. If that player held the captaincy or the
// vice captaincy, the field is cleared in the same transition so the squad
// never carries a dangling reference.
func RemoveFromSquad(s Squad, playerID string) (Squad, error) {
	if playerID == "" {
		return s, ErrEmptyPlayerID
	}
	if !s.Contains(playerID) {
		return s, fmt.Errorf("%w: %s", ErrNotSquadMember, playerID)
	}

	next := clone(s)
	filtered := make([]string, 0, len(next.PlayerIDs)-1)
	for _, id := range next.PlayerIDs {
		if id != playerID {
			filtered = append(filtered, id)
		}
	}
	next.PlayerIDs = filtered
	if next.CaptainID == playerID {
		next.CaptainID = ""
	}
	if next.ViceCaptainID == playerID {
		next.ViceCaptainID = ""
	}

	return next, nil
}

func clone(s Squad) Squad {
	copied := s
	copied.PlayerIDs = append([]string(nil), s.PlayerIDs...)
	return copied
}
