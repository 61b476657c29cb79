package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	qb "github.com/fairwaylabs/golfpool/internal/platform/querybuilder"
)

type EntryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(ctx context.Context, e entry.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for entry create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertEntryTx(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit entry create tx: %w", err)
	}

	return nil
}

func insertEntryTx(ctx context.Context, tx *sqlx.Tx, e entry.Entry) error {
	const insertQuery = `
INSERT INTO entries (public_id, user_id, username, league_public_id, payment_status, amount_paid, total_score)
VALUES (:public_id, :user_id, :username, :league_public_id, :payment_status, :amount_paid, :total_score)`

	insertSQL, args, err := sqlx.Named(insertQuery, map[string]any{
		"public_id":        e.ID,
		"user_id":          e.UserID,
		"username":         e.Username,
		"league_public_id": e.LeagueID,
		"payment_status":   string(e.PaymentStatus),
		"amount_paid":      e.AmountPaid,
		"total_score":      e.TotalScore,
	})
	if err != nil {
		return fmt.Errorf("bind insert entry query: %w", err)
	}
	insertSQL = tx.Rebind(insertSQL)
	if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
		if domainErr := asDomainConstraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (r *EntryRepository) GetByID(ctx context.Context, entryID string) (entry.Entry, bool, error) {
	query, args, err := qb.Select("*").From("entries").
		Where(
			qb.Eq("public_id", entryID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return entry.Entry{}, false, fmt.Errorf("build get entry by id query: %w", err)
	}

	var row entryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return entry.Entry{}, false, nil
		}
		return entry.Entry{}, false, fmt.Errorf("get entry by id: %w", err)
	}

	return entryFromRow(row), true, nil
}

func (r *EntryRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (entry.Entry, bool, error) {
	query, args, err := qb.Select("*").From("entries").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return entry.Entry{}, false, fmt.Errorf("build get entry by member query: %w", err)
	}

	var row entryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return entry.Entry{}, false, nil
		}
		return entry.Entry{}, false, fmt.Errorf("get entry by user and league: %w", err)
	}

	return entryFromRow(row), true, nil
}

func (r *EntryRepository) ListByLeague(ctx context.Context, leagueID string) ([]entry.Entry, error) {
	query, args, err := qb.Select("*").From("entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list entries by league query: %w", err)
	}

	var rows []entryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries by league: %w", err)
	}

	out := make([]entry.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}

	return out, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string) ([]entry.Entry, error) {
	query, args, err := qb.Select("*").From("entries").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list entries by user query: %w", err)
	}

	var rows []entryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries by user: %w", err)
	}

	out := make([]entry.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}

	return out, nil
}

func (r *EntryRepository) CountByLeague(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count entries query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count entries by league: %w", err)
	}

	return count, nil
}

func (r *EntryRepository) UpdatePayment(ctx context.Context, entryID string, status entry.PaymentStatus, amountPaid *float64) error {
	builder := qb.Update("entries").
		Set("payment_status", string(status)).
		SetExpr("updated_at", "NOW()")
	if amountPaid != nil {
		builder = builder.Set("amount_paid", *amountPaid)
	}

	query, args, err := builder.
		Where(
			qb.Eq("public_id", entryID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update entry payment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update entry payment: %w", err)
	}

	return nil
}

func (r *EntryRepository) UpdateScore(ctx context.Context, entryID string, totalScore float64) error {
	query, args, err := qb.Update("entries").
		Set("total_score", totalScore).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", entryID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update entry score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update entry score: %w", err)
	}

	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, entryID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for entry delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteEntryQuery = `
UPDATE entries SET deleted_at = NOW(), updated_at = NOW()
WHERE public_id = $1 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, deleteEntryQuery, entryID); err != nil {
		return fmt.Errorf("soft delete entry: %w", err)
	}

	const deleteTeamQuery = `
UPDATE teams SET deleted_at = NOW(), updated_at = NOW()
WHERE entry_public_id = $1 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, deleteTeamQuery, entryID); err != nil {
		return fmt.Errorf("soft delete entry team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit entry delete tx: %w", err)
	}

	return nil
}

func entryFromRow(row entryTableModel) entry.Entry {
	return entry.Entry{
		ID:            row.PublicID,
		UserID:        row.UserID,
		Username:      row.Username,
		LeagueID:      row.LeagueID,
		PaymentStatus: entry.PaymentStatus(row.PaymentStatus),
		AmountPaid:    row.AmountPaid,
		TotalScore:    row.TotalScore,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
