package memory

import (
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/club"
	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
)

const (
	ClubIDRiverside = "club-riverside"

	YearGroupIDUnder10 = "yg-riverside-u10"

	TeamIDUnder10Lions  = "team-u10-lions"
	TeamIDUnder10Tigers = "team-u10-tigers"

	EventIDLionsTraining  = "ev-lions-training-01"
	EventIDLionsMatch     = "ev-lions-match-01"
	EventIDTigersFriendly = "ev-tigers-friendly-01"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{
			ID:      ClubIDRiverside,
			Name:    "Riverside Juniors FC",
			TeamIDs: []string{TeamIDUnder10Lions, TeamIDUnder10Tigers},
		},
	}
}

func SeedYearGroups() []yeargroup.YearGroup {
	return []yeargroup.YearGroup{
		{
			ID:              YearGroupIDUnder10,
			ClubID:          ClubIDRiverside,
			Name:            "Under 10s",
			AgeYear:         2016,
			PlayingFormat:   string(team.Format7ASide),
			SoftPlayerLimit: 12,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:          TeamIDUnder10Lions,
			ClubID:      ClubIDRiverside,
			Name:        "U10 Lions",
			AgeGroup:    "U10",
			GameFormat:  team.Format7ASide,
			YearGroupID: YearGroupIDUnder10,
		},
		{
			ID:          TeamIDUnder10Tigers,
			ClubID:      ClubIDRiverside,
			Name:        "U10 Tigers",
			AgeGroup:    "U10",
			GameFormat:  team.Format7ASide,
			YearGroupID: YearGroupIDUnder10,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-lion-01", TeamID: TeamIDUnder10Lions, Name: "Archie Holt", SquadNumber: 1, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-lion-02", TeamID: TeamIDUnder10Lions, Name: "Ben Okafor", SquadNumber: 2, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-lion-03", TeamID: TeamIDUnder10Lions, Name: "Caleb Mensah", SquadNumber: 3, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-lion-04", TeamID: TeamIDUnder10Lions, Name: "Dylan Reeve", SquadNumber: 4, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-lion-05", TeamID: TeamIDUnder10Lions, Name: "Ethan Carney", SquadNumber: 5, Subscription: player.SubscriptionLimited},
		{ID: "pl-lion-06", TeamID: TeamIDUnder10Lions, Name: "Finley Brook", SquadNumber: 6, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-lion-07", TeamID: TeamIDUnder10Lions, Name: "George Akande", SquadNumber: 7, Subscription: player.SubscriptionFree},
		{ID: "pl-tiger-01", TeamID: TeamIDUnder10Tigers, Name: "Harry Whitmore", SquadNumber: 1, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-tiger-02", TeamID: TeamIDUnder10Tigers, Name: "Isaac Deng", SquadNumber: 2, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-tiger-03", TeamID: TeamIDUnder10Tigers, Name: "Jude Farrell", SquadNumber: 3, Subscription: player.SubscriptionFullSquad},
		{ID: "pl-tiger-04", TeamID: TeamIDUnder10Tigers, Name: "Kian Oduya", SquadNumber: 4, Subscription: player.SubscriptionLimited},
		{ID: "pl-tiger-05", TeamID: TeamIDUnder10Tigers, Name: "Leo Marsh", SquadNumber: 5, Subscription: player.SubscriptionFullSquad},
	}
}

func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:       EventIDLionsTraining,
			TeamID:   TeamIDUnder10Lions,
			Title:    "Tuesday Training",
			Type:     event.TypeTraining,
			Date:     time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
			Location: "Riverside Rec Ground",
		},
		{
			ID:       EventIDLionsMatch,
			TeamID:   TeamIDUnder10Lions,
			Title:    "vs Hillcrest Colts",
			Type:     event.TypeMatch,
			Date:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			Location: "Hillcrest Park",
		},
		{
			ID:       EventIDTigersFriendly,
			TeamID:   TeamIDUnder10Tigers,
			Title:    "Friendly vs Oakwood",
			Type:     event.TypeFriendly,
			Date:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
			Location: "Riverside Rec Ground",
		},
	}
}
