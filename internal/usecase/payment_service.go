package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
)

// Payment event types the provider webhook delivers. Anything else is
// acknowledged and dropped.
const (
	PaymentEventCheckoutCompleted = "checkout.completed"
	PaymentEventChargeSettled     = "charge.settled"
	PaymentEventChargeRefunded    = "charge.refunded"
)

type CheckoutRequest struct {
	EntryID    string
	LeagueID   string
	LeagueName string
	UserID     string
	Amount     float64
}

// checkoutGateway is satisfied by the payment provider client. It returns the
// hosted checkout URL the user completes payment on.
type checkoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
}

type PaymentEventInput struct {
	Type    string
	EntryID string
	// AmountNet is the amount received after provider fees, when the event
	// carries one.
	AmountNet *float64
}

type PaymentService struct {
	entryRepo  entry.Repository
	leagueRepo league.Repository
	checkout   checkoutGateway
	now        func() time.Time
}

func NewPaymentService(entryRepo entry.Repository, leagueRepo league.Repository, checkout checkoutGateway) *PaymentService {
	return &PaymentService{
		entryRepo:  entryRepo,
		leagueRepo: leagueRepo,
		checkout:   checkout,
		now:        time.Now,
	}
}

// RequestCheckout creates a hosted checkout session for a pending entry and
// returns its URL.
func (s *PaymentService) RequestCheckout(ctx context.Context, userID, entryID string) (string, error) {
	userID = strings.TrimSpace(userID)
	entryID = strings.TrimSpace(entryID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if entryID == "" {
		return "", fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}
	if s.checkout == nil {
		return "", fmt.Errorf("%w: payments are not configured", ErrDependencyUnavailable)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return "", fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}
	if e.UserID != userID {
		return "", fmt.Errorf("%w: entry belongs to another user", ErrForbidden)
	}
	if e.PaymentStatus != entry.PaymentStatusPending {
		return "", fmt.Errorf("%w: entry payment is already %s", ErrIllegalState, e.PaymentStatus)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, e.LeagueID)
	if err != nil {
		return "", fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: league=%s", ErrNotFound, e.LeagueID)
	}
	if l.Status != league.StatusOpen {
		return "", fmt.Errorf("%w: league is %s and no longer collecting entry fees", ErrIllegalState, l.Status)
	}

	url, err := s.checkout.CreateCheckoutSession(ctx, CheckoutRequest{
		EntryID:    e.ID,
		LeagueID:   l.ID,
		LeagueName: l.Name,
		UserID:     e.UserID,
		Amount:     l.EntryFee,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create checkout session: %v", ErrDependencyUnavailable, err)
	}

	return url, nil
}

// ApplyPaymentNotification folds a provider webhook event into the entry's
// payment state. Providers redeliver events, so every branch is idempotent.
func (s *PaymentService) ApplyPaymentNotification(ctx context.Context, input PaymentEventInput) error {
	input.Type = strings.TrimSpace(input.Type)
	input.EntryID = strings.TrimSpace(input.EntryID)
	if input.EntryID == "" {
		return fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, input.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: entry=%s", ErrNotFound, input.EntryID)
	}

	switch input.Type {
	case PaymentEventCheckoutCompleted, PaymentEventChargeSettled:
		// Refunded is terminal. A late or redelivered paid-event must not
		// flip the entry back, or out-of-order delivery stops converging.
		if e.PaymentStatus == entry.PaymentStatusRefunded {
			return nil
		}
		if e.PaymentStatus == entry.PaymentStatusPaid && input.AmountNet == nil {
			return nil
		}
		amount := input.AmountNet
		if amount == nil {
			l, exists, err := s.leagueRepo.GetByID(ctx, e.LeagueID)
			if err != nil {
				return fmt.Errorf("get league: %w", err)
			}
			if !exists {
				return fmt.Errorf("%w: league=%s", ErrNotFound, e.LeagueID)
			}
			amount = &l.EntryFee
		}
		if err := s.entryRepo.UpdatePayment(ctx, e.ID, entry.PaymentStatusPaid, amount); err != nil {
			return fmt.Errorf("mark entry paid: %w", err)
		}
	case PaymentEventChargeRefunded:
		if e.PaymentStatus == entry.PaymentStatusRefunded {
			return nil
		}
		zero := 0.0
		if err := s.entryRepo.UpdatePayment(ctx, e.ID, entry.PaymentStatusRefunded, &zero); err != nil {
			return fmt.Errorf("mark entry refunded: %w", err)
		}
	default:
		// Unsubscribed event types get acknowledged so the provider stops
		// redelivering them.
		return nil
	}

	return nil
}
