package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the reference data (tournament calendar, golfer pool,
// odds sheets) into an empty database. Runs at startup and is a no-op once
// tournaments exist; the real feed takes over from there.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM tournaments WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count tournaments for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTournaments() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO tournaments (public_id, name, location, start_at, end_at, status)
VALUES (:public_id, :name, :location, :start_at, :end_at, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
			"location":  t.Location,
			"start_at":  t.StartAt,
			"end_at":    t.EndAt,
			"status":    string(t.Status),
		})
		if err != nil {
			return fmt.Errorf("bind seed tournament %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}

	for _, g := range memory.SeedGolfers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO golfers (public_id, name, country, world_ranking)
VALUES (:public_id, :name, :country, :world_ranking)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":     g.ID,
			"name":          g.Name,
			"country":       g.Country,
			"world_ranking": g.WorldRanking,
		})
		if err != nil {
			return fmt.Errorf("bind seed golfer %s query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed golfer %s: %w", g.ID, err)
		}
	}

	for _, o := range memory.SeedMastersOdds() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO tournament_odds (golfer_public_id, tournament_public_id, category, odds)
VALUES (:golfer_public_id, :tournament_public_id, :category, :odds)
ON CONFLICT (golfer_public_id, tournament_public_id) DO NOTHING`, map[string]any{
			"golfer_public_id":     o.GolferID,
			"tournament_public_id": o.TournamentID,
			"category":             o.Category,
			"odds":                 o.Odds,
		})
		if err != nil {
			return fmt.Errorf("bind seed odds golfer=%s query: %w", o.GolferID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed odds golfer=%s: %w", o.GolferID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
