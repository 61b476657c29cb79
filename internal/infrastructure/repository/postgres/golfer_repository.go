package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	qb "github.com/fairwaylabs/golfpool/internal/platform/querybuilder"
)

type golferTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Country      string     `db:"country"`
	WorldRanking int        `db:"world_ranking"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type oddsTableModel struct {
	GolferID     string  `db:"golfer_public_id"`
	TournamentID string  `db:"tournament_public_id"`
	Category     int     `db:"category"`
	Odds         float64 `db:"odds"`
}

type GolferRepository struct {
	db *sqlx.DB
}

func NewGolferRepository(db *sqlx.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func (r *GolferRepository) List(ctx context.Context) ([]golfer.Golfer, error) {
	query, args, err := qb.Select("*").From("golfers").
		Where(qb.IsNull("deleted_at")).
		OrderBy("world_ranking").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list golfers query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golferFromRow(row))
	}

	return out, nil
}

func (r *GolferRepository) GetByID(ctx context.Context, id string) (golfer.Golfer, bool, error) {
	query, args, err := qb.Select("*").From("golfers").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return golfer.Golfer{}, false, fmt.Errorf("build get golfer by id query: %w", err)
	}

	var row golferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return golfer.Golfer{}, false, nil
		}
		return golfer.Golfer{}, false, fmt.Errorf("get golfer by id: %w", err)
	}

	return golferFromRow(row), true, nil
}

func (r *GolferRepository) ListOddsByTournament(ctx context.Context, tournamentID string, category int) ([]golfer.TournamentOdds, error) {
	conditions := []qb.Condition{qb.Eq("tournament_public_id", tournamentID)}
	if category != 0 {
		conditions = append(conditions, qb.Eq("category", category))
	}

	query, args, err := qb.Select("golfer_public_id", "tournament_public_id", "category", "odds").
		From("tournament_odds").
		Where(conditions...).
		OrderBy("category", "odds").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournament odds query: %w", err)
	}

	var rows []oddsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournament odds: %w", err)
	}

	out := make([]golfer.TournamentOdds, 0, len(rows))
	for _, row := range rows {
		out = append(out, golfer.TournamentOdds{
			GolferID:     row.GolferID,
			TournamentID: row.TournamentID,
			Category:     row.Category,
			Odds:         row.Odds,
		})
	}

	return out, nil
}

func golferFromRow(row golferTableModel) golfer.Golfer {
	return golfer.Golfer{
		ID:           row.PublicID,
		Name:         row.Name,
		Country:      row.Country,
		WorldRanking: row.WorldRanking,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
