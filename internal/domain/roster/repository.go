package roster

import (
	"context"
	"errors"
)

// ErrTeamExists signals the at-most-one-team-per-entry uniqueness constraint.
// Storage implementations must return it (wrapped or bare) when a concurrent
// or repeated create races against an existing team for the same entry.
var ErrTeamExists = errors.New("team already exists for entry")

// Repository describes team persistence needs from use cases.
//
// ReplacePicks swaps the full pick list atomically: on failure the team must
// keep its prior picks, never a half-replaced set.
type Repository interface {
	Create(ctx context.Context, team Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByEntry(ctx context.Context, entryID string) (Team, bool, error)
	ReplacePicks(ctx context.Context, team Team) error
	Delete(ctx context.Context, teamID string) error
}
