package leaderboard

import "context"

// Repository describes leaderboard persistence needs from use cases. Each
// league owns exactly one leaderboard record, created with the league; Save
// overwrites the prize fields and the rankings snapshot wholesale.
type Repository interface {
	GetByLeague(ctx context.Context, leagueID string) (Leaderboard, bool, error)
	Save(ctx context.Context, lb Leaderboard) error
}
