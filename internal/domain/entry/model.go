package entry

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var allPaymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusPending:  {},
	PaymentStatusPaid:     {},
	PaymentStatusRefunded: {},
}

func ParsePaymentStatus(value string) (PaymentStatus, error) {
	s := PaymentStatus(value)
	if _, ok := allPaymentStatuses[s]; !ok {
		return "", fmt.Errorf("unknown payment status: %q", value)
	}
	return s, nil
}

// Entry is one user's paid participation record in one league. AmountPaid is
// the currency actually received net of processor fees, which is the
// authoritative prize-pool input; the league's nominal entry fee is not.
type Entry struct {
	ID            string
	UserID        string
	Username      string
	LeagueID      string
	PaymentStatus PaymentStatus
	AmountPaid    float64
	TotalScore    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	if e.UserID == "" {
		return fmt.Errorf("entry user id is required")
	}
	if e.LeagueID == "" {
		return fmt.Errorf("entry league id is required")
	}
	if _, ok := allPaymentStatuses[e.PaymentStatus]; !ok {
		return fmt.Errorf("invalid payment status: %s", e.PaymentStatus)
	}

	return nil
}
