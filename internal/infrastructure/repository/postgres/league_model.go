package postgres

import "time"

type leagueTableModel struct {
	ID              int64      `db:"id"`
	PublicID        string     `db:"public_id"`
	Name            string     `db:"name"`
	CreatorID       string     `db:"creator_id"`
	TournamentID    string     `db:"tournament_public_id"`
	EntryFee        float64    `db:"entry_fee"`
	InvitationCode  string     `db:"invitation_code"`
	Status          string     `db:"status"`
	MaxParticipants int        `db:"max_participants"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}
