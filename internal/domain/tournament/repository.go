package tournament

import (
	"context"
	"time"
)

// Repository exposes read access to the tournament calendar. Tournaments are
// maintained by an upstream data feed, so the API never mutates them.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	// ListFuture returns tournaments starting after the given instant,
	// soonest first.
	ListFuture(ctx context.Context, after time.Time) ([]Tournament, error)
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
}
