package golfer

import "context"

// Repository exposes read access to the golfer pool and per-tournament odds.
// Like tournaments, golfer data comes from an upstream feed.
type Repository interface {
	List(ctx context.Context) ([]Golfer, error)
	GetByID(ctx context.Context, id string) (Golfer, bool, error)
	// ListOddsByTournament returns the odds sheet for a tournament,
	// optionally filtered to one category. Category 0 means no filter.
	ListOddsByTournament(ctx context.Context, tournamentID string, category int) ([]TournamentOdds, error)
}
