package postgres

import "time"

type entryTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	UserID        string     `db:"user_id"`
	Username      string     `db:"username"`
	LeagueID      string     `db:"league_public_id"`
	PaymentStatus string     `db:"payment_status"`
	AmountPaid    float64    `db:"amount_paid"`
	TotalScore    float64    `db:"total_score"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}
