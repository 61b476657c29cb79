package memory

import (
	"context"
	"sync"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
)

// LeagueRepository holds leagues and keeps the creator-entry and leaderboard
// side effects of Create consistent with the entry and leaderboard stores the
// way the postgres implementation does in one transaction.
type LeagueRepository struct {
	mu           sync.RWMutex
	items        map[string]league.League
	byCode       map[string]string
	entries      *EntryRepository
	leaderboards *LeaderboardRepository
}

func NewLeagueRepository(entries *EntryRepository, leaderboards *LeaderboardRepository) *LeagueRepository {
	return &LeagueRepository{
		items:        make(map[string]league.League),
		byCode:       make(map[string]string),
		entries:      entries,
		leaderboards: leaderboards,
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.League, creatorEntry entry.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[l.InvitationCode]; taken {
		return league.ErrInvitationCodeTaken
	}

	r.entries.mu.Lock()
	err := r.entries.createLocked(creatorEntry)
	r.entries.mu.Unlock()
	if err != nil {
		return err
	}

	r.items[l.ID] = l
	r.byCode[l.InvitationCode] = l.ID

	r.leaderboards.mu.Lock()
	r.leaderboards.items[l.ID] = leaderboard.Leaderboard{
		LeagueID:    l.ID,
		LastUpdated: l.CreatedAt,
	}
	r.leaderboards.mu.Unlock()

	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByInvitationCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return league.League{}, false, nil
	}

	return r.items[id], true, nil
}

func (r *LeagueRepository) ListByUser(ctx context.Context, userID string) ([]league.League, error) {
	entries, err := r.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(entries))
	for _, e := range entries {
		if l, ok := r.items[e.LeagueID]; ok {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListIDsByStatus(_ context.Context, status league.Status) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for id, l := range r.items {
		if l.Status == status {
			out = append(out, id)
		}
	}

	return out, nil
}

func (r *LeagueRepository) UpdateStatus(_ context.Context, leagueID string, status league.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return nil
	}

	l.Status = status
	r.items[leagueID] = l
	return nil
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	r.mu.Lock()
	l, ok := r.items[leagueID]
	if ok {
		delete(r.byCode, l.InvitationCode)
		delete(r.items, leagueID)
	}
	r.mu.Unlock()
	if !ok {
		return nil
	}

	entries, err := r.entries.ListByLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := r.entries.Delete(ctx, e.ID); err != nil {
			return err
		}
	}

	r.leaderboards.remove(leagueID)
	return nil
}
