package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/domain/roster"
	qb "github.com/fairwaylabs/golfpool/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) Create(ctx context.Context, team roster.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertTeamQuery = `
INSERT INTO teams (public_id, entry_public_id, total_category_points, is_valid)
VALUES (:public_id, :entry_public_id, :total_category_points, :is_valid)`

	teamSQL, teamArgs, err := sqlx.Named(insertTeamQuery, map[string]any{
		"public_id":             team.ID,
		"entry_public_id":       team.EntryID,
		"total_category_points": team.TotalCategoryPoints,
		"is_valid":              team.IsValid,
	})
	if err != nil {
		return fmt.Errorf("bind insert team query: %w", err)
	}
	teamSQL = tx.Rebind(teamSQL)
	if _, err := tx.ExecContext(ctx, teamSQL, teamArgs...); err != nil {
		if domainErr := asDomainConstraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("insert team: %w", err)
	}

	if err := insertPicksTx(ctx, tx, team.ID, team.Picks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team create tx: %w", err)
	}

	return nil
}

func (r *RosterRepository) GetByID(ctx context.Context, teamID string) (roster.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Team{}, false, nil
		}
		return roster.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return r.hydrateTeam(ctx, row)
}

func (r *RosterRepository) GetByEntry(ctx context.Context, entryID string) (roster.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("entry_public_id", entryID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Team{}, false, fmt.Errorf("build get team by entry query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Team{}, false, nil
		}
		return roster.Team{}, false, fmt.Errorf("get team by entry: %w", err)
	}

	return r.hydrateTeam(ctx, row)
}

// ReplacePicks rewrites the team row and its pick list in one transaction so
// a failed replace never leaves a partial roster behind.
func (r *RosterRepository) ReplacePicks(ctx context.Context, team roster.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateTeamQuery = `
UPDATE teams
SET total_category_points = $1, is_valid = $2, updated_at = NOW()
WHERE public_id = $3 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, updateTeamQuery, team.TotalCategoryPoints, team.IsValid, team.ID); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	const clearPicksQuery = `DELETE FROM team_picks WHERE team_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearPicksQuery, team.ID); err != nil {
		return fmt.Errorf("clear team picks: %w", err)
	}

	if err := insertPicksTx(ctx, tx, team.ID, team.Picks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team replace tx: %w", err)
	}

	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, teamID string) error {
	const query = `
UPDATE teams SET deleted_at = NOW(), updated_at = NOW()
WHERE public_id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("soft delete team: %w", err)
	}

	return nil
}

func insertPicksTx(ctx context.Context, tx *sqlx.Tx, teamID string, picks []roster.Pick) error {
	const insertPickQuery = `
INSERT INTO team_picks (team_public_id, golfer_public_id, category, score)
VALUES (:team_public_id, :golfer_public_id, :category, :score)`

	for _, pick := range picks {
		pickSQL, pickArgs, err := sqlx.Named(insertPickQuery, map[string]any{
			"team_public_id":   teamID,
			"golfer_public_id": pick.GolferID,
			"category":         pick.Category,
			"score":            pick.Score,
		})
		if err != nil {
			return fmt.Errorf("bind insert pick golfer=%s query: %w", pick.GolferID, err)
		}
		pickSQL = tx.Rebind(pickSQL)
		if _, err := tx.ExecContext(ctx, pickSQL, pickArgs...); err != nil {
			return fmt.Errorf("insert pick golfer=%s: %w", pick.GolferID, err)
		}
	}

	return nil
}

func (r *RosterRepository) hydrateTeam(ctx context.Context, row teamTableModel) (roster.Team, bool, error) {
	const picksQuery = `
SELECT golfer_public_id, category, score
FROM team_picks
WHERE team_public_id = $1
ORDER BY id`

	var pickRows []teamPickTableModel
	if err := r.db.SelectContext(ctx, &pickRows, picksQuery, row.PublicID); err != nil {
		return roster.Team{}, false, fmt.Errorf("list team picks: %w", err)
	}

	picks := make([]roster.Pick, 0, len(pickRows))
	for _, p := range pickRows {
		picks = append(picks, roster.Pick{
			GolferID: p.GolferID,
			Category: p.Category,
			Score:    p.Score,
		})
	}

	return roster.Team{
		ID:                  row.PublicID,
		EntryID:             row.EntryID,
		Picks:               picks,
		TotalCategoryPoints: row.TotalCategoryPoints,
		IsValid:             row.IsValid,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}, true, nil
}
