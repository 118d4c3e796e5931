package player

import (
	"fmt"
	"time"
)

// SubscriptionType gates match eligibility for a player.
type SubscriptionType string

const (
	SubscriptionFullSquad SubscriptionType = "full_squad"
	SubscriptionLimited   SubscriptionType = "limited"
	SubscriptionFree      SubscriptionType = "free"
)

var AllSubscriptionTypes = map[SubscriptionType]struct{}{
	SubscriptionFullSquad: {},
	SubscriptionLimited:   {},
	SubscriptionFree:      {},
}

// Player is a registered member of exactly one team at a time.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	SquadNumber  int
	Subscription SubscriptionType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.SquadNumber <= 0 {
		return fmt.Errorf("squad number must be greater than zero")
	}
	if p.Subscription != "" {
		if _, ok := AllSubscriptionTypes[p.Subscription]; !ok {
			return fmt.Errorf("invalid subscription type: %s", p.Subscription)
		}
	}

	return nil
}

// MatchEligible reports whether the player's subscription allows match selection.
// Training-only subscriptions can still join training squads.
func (p Player) MatchEligible() bool {
	return p.Subscription == "" || p.Subscription == SubscriptionFullSquad
}
