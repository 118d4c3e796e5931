package team

import (
	"fmt"
	"time"
)

// GameFormat is the match size a team plays.
type GameFormat string

const (
	Format5ASide  GameFormat = "5-a-side"
	Format7ASide  GameFormat = "7-a-side"
	Format9ASide  GameFormat = "9-a-side"
	Format11ASide GameFormat = "11-a-side"
)

var AllGameFormats = map[GameFormat]struct{}{
	Format5ASide:  {},
	Format7ASide:  {},
	Format9ASide:  {},
	Format11ASide: {},
}

// PlayerCount returns the number of players on the pitch for the format.
func (f GameFormat) PlayerCount() int {
	switch f {
	case Format5ASide:
		return 5
	case Format7ASide:
		return 7
	case Format9ASide:
		return 9
	default:
		return 11
	}
}

// Team is one side within a club, optionally grouped under a year group.
type Team struct {
	ID          string
	ClubID      string
	Name        string
	AgeGroup    string
	GameFormat  GameFormat
	YearGroupID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.ClubID == "" {
		return fmt.Errorf("team club id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if _, ok := AllGameFormats[t.GameFormat]; !ok {
		return fmt.Errorf("invalid game format: %s", t.GameFormat)
	}

	return nil
}
