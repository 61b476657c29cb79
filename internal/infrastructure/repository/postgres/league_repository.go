package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	qb "github.com/fairwaylabs/golfpool/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// Create inserts the league, the creator's entry, and the league's empty
// leaderboard row in one transaction.
func (r *LeagueRepository) Create(ctx context.Context, l league.League, creatorEntry entry.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for league create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertLeagueQuery = `
INSERT INTO leagues (
    public_id,
    name,
    creator_id,
    tournament_public_id,
    entry_fee,
    invitation_code,
    status,
    max_participants
) VALUES (:public_id, :name, :creator_id, :tournament_public_id, :entry_fee, :invitation_code, :status, :max_participants)`

	leagueSQL, leagueArgs, err := sqlx.Named(insertLeagueQuery, map[string]any{
		"public_id":            l.ID,
		"name":                 l.Name,
		"creator_id":           l.CreatorID,
		"tournament_public_id": l.TournamentID,
		"entry_fee":            l.EntryFee,
		"invitation_code":      l.InvitationCode,
		"status":               string(l.Status),
		"max_participants":     l.MaxParticipants,
	})
	if err != nil {
		return fmt.Errorf("bind insert league query: %w", err)
	}
	leagueSQL = tx.Rebind(leagueSQL)
	if _, err := tx.ExecContext(ctx, leagueSQL, leagueArgs...); err != nil {
		if domainErr := asDomainConstraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("insert league: %w", err)
	}

	if err := insertEntryTx(ctx, tx, creatorEntry); err != nil {
		return err
	}

	const insertLeaderboardQuery = `
INSERT INTO leaderboards (league_public_id, prize_pool, first_place_prize, second_place_prize, third_place_prize)
VALUES ($1, 0, 0, 0, 0)`
	if _, err := tx.ExecContext(ctx, insertLeaderboardQuery, l.ID); err != nil {
		return fmt.Errorf("insert leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit league create tx: %w", err)
	}

	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) GetByInvitationCode(ctx context.Context, code string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("invitation_code", code),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by code query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by invitation code: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) ListByUser(ctx context.Context, userID string) ([]league.League, error) {
	const query = `
SELECT l.*
FROM leagues l
JOIN entries e ON e.league_public_id = l.public_id AND e.deleted_at IS NULL
WHERE e.user_id = $1
  AND l.deleted_at IS NULL
ORDER BY l.created_at DESC`

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) ListIDsByStatus(ctx context.Context, status league.Status) ([]string, error) {
	query, args, err := qb.Select("public_id").From("leagues").
		Where(
			qb.Eq("status", string(status)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list league ids by status: %w", err)
	}

	return ids, nil
}

func (r *LeagueRepository) UpdateStatus(ctx context.Context, leagueID string, status league.Status) error {
	query, args, err := qb.Update("leagues").
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update league status: %w", err)
	}

	return nil
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for league delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteLeagueQuery = `
UPDATE leagues SET deleted_at = NOW(), updated_at = NOW()
WHERE public_id = $1 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, deleteLeagueQuery, leagueID); err != nil {
		return fmt.Errorf("soft delete league: %w", err)
	}

	const deleteEntriesQuery = `
UPDATE entries SET deleted_at = NOW(), updated_at = NOW()
WHERE league_public_id = $1 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, deleteEntriesQuery, leagueID); err != nil {
		return fmt.Errorf("soft delete league entries: %w", err)
	}

	const deleteTeamsQuery = `
UPDATE teams SET deleted_at = NOW(), updated_at = NOW()
WHERE deleted_at IS NULL
  AND entry_public_id IN (SELECT public_id FROM entries WHERE league_public_id = $1)`
	if _, err := tx.ExecContext(ctx, deleteTeamsQuery, leagueID); err != nil {
		return fmt.Errorf("soft delete league teams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit league delete tx: %w", err)
	}

	return nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:              row.PublicID,
		Name:            row.Name,
		CreatorID:       row.CreatorID,
		TournamentID:    row.TournamentID,
		EntryFee:        row.EntryFee,
		InvitationCode:  row.InvitationCode,
		Status:          league.Status(row.Status),
		MaxParticipants: row.MaxParticipants,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
