package golfer

import "time"

// Golfer is a professional player selectable onto teams.
type Golfer struct {
	ID           string
	Name         string
	Country      string
	WorldRanking int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TournamentOdds carries a golfer's category band and betting odds for a
// specific tournament. The category is what team validation sums over.
type TournamentOdds struct {
	GolferID     string
	TournamentID string
	Category     int
	Odds         float64
}
