package postgres

import "time"

type leaderboardTableModel struct {
	ID               int64     `db:"id"`
	LeagueID         string    `db:"league_public_id"`
	PrizePool        float64   `db:"prize_pool"`
	FirstPlacePrize  float64   `db:"first_place_prize"`
	SecondPlacePrize float64   `db:"second_place_prize"`
	ThirdPlacePrize  float64   `db:"third_place_prize"`
	LastUpdated      time.Time `db:"last_updated"`
}

type rankingTableModel struct {
	EntryID  string  `db:"entry_public_id"`
	UserID   string  `db:"user_id"`
	Username string  `db:"username"`
	Position int     `db:"position"`
	Score    float64 `db:"score"`
	Prize    float64 `db:"prize"`
}
