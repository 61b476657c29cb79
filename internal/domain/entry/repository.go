package entry

import (
	"context"
	"errors"
)

// ErrAlreadyExists signals the one-entry-per-(user,league) uniqueness
// constraint. Stores must return it on duplicate create so concurrent join
// attempts surface as a conflict rather than a crash.
var ErrAlreadyExists = errors.New("entry already exists for user and league")

// Repository describes entry persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, entryID string) (Entry, bool, error)
	GetByUserAndLeague(ctx context.Context, userID, leagueID string) (Entry, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Entry, error)
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	CountByLeague(ctx context.Context, leagueID string) (int, error)
	UpdatePayment(ctx context.Context, entryID string, status PaymentStatus, amountPaid *float64) error
	UpdateScore(ctx context.Context, entryID string, totalScore float64) error
	Delete(ctx context.Context, entryID string) error
}
