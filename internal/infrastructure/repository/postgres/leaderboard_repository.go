package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) GetByLeague(ctx context.Context, leagueID string) (leaderboard.Leaderboard, bool, error) {
	const query = `
SELECT id, league_public_id, prize_pool, first_place_prize, second_place_prize, third_place_prize, last_updated
FROM leaderboards
WHERE league_public_id = $1`

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, leagueID); err != nil {
		if isNotFound(err) {
			return leaderboard.Leaderboard{}, false, nil
		}
		return leaderboard.Leaderboard{}, false, fmt.Errorf("get leaderboard by league: %w", err)
	}

	const rankingsQuery = `
SELECT entry_public_id, user_id, username, position, score, prize
FROM leaderboard_rankings
WHERE league_public_id = $1
ORDER BY position`

	var rankingRows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rankingRows, rankingsQuery, leagueID); err != nil {
		return leaderboard.Leaderboard{}, false, fmt.Errorf("list leaderboard rankings: %w", err)
	}

	rankings := make([]leaderboard.Ranking, 0, len(rankingRows))
	for _, rr := range rankingRows {
		rankings = append(rankings, leaderboard.Ranking{
			EntryID:  rr.EntryID,
			UserID:   rr.UserID,
			Username: rr.Username,
			Position: rr.Position,
			Score:    rr.Score,
			Prize:    rr.Prize,
		})
	}

	return leaderboard.Leaderboard{
		LeagueID:         row.LeagueID,
		PrizePool:        row.PrizePool,
		FirstPlacePrize:  row.FirstPlacePrize,
		SecondPlacePrize: row.SecondPlacePrize,
		ThirdPlacePrize:  row.ThirdPlacePrize,
		Rankings:         rankings,
		LastUpdated:      row.LastUpdated,
	}, true, nil
}

// Save overwrites the prize fields and rewrites the rankings snapshot in one
// transaction.
func (r *LeaderboardRepository) Save(ctx context.Context, lb leaderboard.Leaderboard) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for leaderboard save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertQuery = `
INSERT INTO leaderboards (league_public_id, prize_pool, first_place_prize, second_place_prize, third_place_prize, last_updated)
VALUES (:league_public_id, :prize_pool, :first_place_prize, :second_place_prize, :third_place_prize, :last_updated)
ON CONFLICT (league_public_id)
DO UPDATE SET
    prize_pool = EXCLUDED.prize_pool,
    first_place_prize = EXCLUDED.first_place_prize,
    second_place_prize = EXCLUDED.second_place_prize,
    third_place_prize = EXCLUDED.third_place_prize,
    last_updated = EXCLUDED.last_updated`

	upsertSQL, upsertArgs, err := sqlx.Named(upsertQuery, map[string]any{
		"league_public_id":   lb.LeagueID,
		"prize_pool":         lb.PrizePool,
		"first_place_prize":  lb.FirstPlacePrize,
		"second_place_prize": lb.SecondPlacePrize,
		"third_place_prize":  lb.ThirdPlacePrize,
		"last_updated":       lb.LastUpdated,
	})
	if err != nil {
		return fmt.Errorf("bind upsert leaderboard query: %w", err)
	}
	upsertSQL = tx.Rebind(upsertSQL)
	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
		return fmt.Errorf("upsert leaderboard: %w", err)
	}

	const clearQuery = `DELETE FROM leaderboard_rankings WHERE league_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, lb.LeagueID); err != nil {
		return fmt.Errorf("clear leaderboard rankings: %w", err)
	}

	const insertRankingQuery = `
INSERT INTO leaderboard_rankings (league_public_id, entry_public_id, user_id, username, position, score, prize)
VALUES (:league_public_id, :entry_public_id, :user_id, :username, :position, :score, :prize)`

	for _, ranking := range lb.Rankings {
		rankingSQL, rankingArgs, err := sqlx.Named(insertRankingQuery, map[string]any{
			"league_public_id": lb.LeagueID,
			"entry_public_id":  ranking.EntryID,
			"user_id":          ranking.UserID,
			"username":         ranking.Username,
			"position":         ranking.Position,
			"score":            ranking.Score,
			"prize":            ranking.Prize,
		})
		if err != nil {
			return fmt.Errorf("bind insert ranking entry=%s query: %w", ranking.EntryID, err)
		}
		rankingSQL = tx.Rebind(rankingSQL)
		if _, err := tx.ExecContext(ctx, rankingSQL, rankingArgs...); err != nil {
			return fmt.Errorf("insert ranking entry=%s: %w", ranking.EntryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit leaderboard save tx: %w", err)
	}

	return nil
}
