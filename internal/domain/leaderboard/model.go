package leaderboard

import "time"

// Ranking is one row of the persisted standings snapshot.
type Ranking struct {
	EntryID  string
	UserID   string
	Username string
	Position int
	Score    float64
	Prize    float64
}

// Leaderboard is the cached, fully derived standings for one league. It is
// recomputable at any time from the league's entries and is rewritten
// wholesale on every refresh; nothing else mutates it.
type Leaderboard struct {
	LeagueID         string
	PrizePool        float64
	FirstPlacePrize  float64
	SecondPlacePrize float64
	ThirdPlacePrize  float64
	Rankings         []Ranking
	LastUpdated      time.Time
}
