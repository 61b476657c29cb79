package postgres

import "time"

type teamTableModel struct {
	ID                  int64      `db:"id"`
	PublicID            string     `db:"public_id"`
	EntryID             string     `db:"entry_public_id"`
	TotalCategoryPoints int        `db:"total_category_points"`
	IsValid             bool       `db:"is_valid"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	DeletedAt           *time.Time `db:"deleted_at"`
}

type teamPickTableModel struct {
	GolferID string  `db:"golfer_public_id"`
	Category int     `db:"category"`
	Score    float64 `db:"score"`
}
