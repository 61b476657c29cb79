package league

import (
	"context"
	"errors"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
)

// ErrInvitationCodeTaken signals the invitation-code uniqueness constraint.
// League creation retries with a freshly generated code instead of failing.
var ErrInvitationCodeTaken = errors.New("invitation code already taken")

// Repository describes league persistence needs from use cases.
//
// Create provisions the league, the creator's pending entry, and the league's
// empty leaderboard record as one atomic unit: every league has exactly one
// leaderboard from the moment it exists.
type Repository interface {
	Create(ctx context.Context, l League, creatorEntry entry.Entry) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByInvitationCode(ctx context.Context, code string) (League, bool, error)
	ListByUser(ctx context.Context, userID string) ([]League, error)
	ListIDsByStatus(ctx context.Context, status Status) ([]string, error)
	UpdateStatus(ctx context.Context, leagueID string, status Status) error
	Delete(ctx context.Context, leagueID string) error
}
