package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/roster"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// asDomainConstraintError maps a unique-constraint violation onto the domain
// sentinel the violated constraint stands for, so use cases never see
// postgres error shapes.
func asDomainConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return nil
	}

	switch pqErr.Constraint {
	case "leagues_invitation_code_key":
		return league.ErrInvitationCodeTaken
	case "entries_user_league_key":
		return entry.ErrAlreadyExists
	case "teams_entry_key":
		return roster.ErrTeamExists
	}

	return nil
}
