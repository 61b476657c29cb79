package memory

import (
	"context"
	"sync"

	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	mu    sync.RWMutex
	items map[string]leaderboard.Leaderboard
}

func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{items: make(map[string]leaderboard.Leaderboard)}
}

func (r *LeaderboardRepository) GetByLeague(_ context.Context, leagueID string) (leaderboard.Leaderboard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lb, ok := r.items[leagueID]
	if !ok {
		return leaderboard.Leaderboard{}, false, nil
	}

	return cloneLeaderboard(lb), true, nil
}

func (r *LeaderboardRepository) Save(_ context.Context, lb leaderboard.Leaderboard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[lb.LeagueID] = cloneLeaderboard(lb)
	return nil
}

func (r *LeaderboardRepository) remove(leagueID string) {
	r.mu.Lock()
	delete(r.items, leagueID)
	r.mu.Unlock()
}

func cloneLeaderboard(lb leaderboard.Leaderboard) leaderboard.Leaderboard {
	copied := lb
	copied.Rankings = append([]leaderboard.Ranking(nil), lb.Rankings...)
	return copied
}
