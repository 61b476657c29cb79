package memory

import (
	"context"
	"sync"

	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
)

type GolferRepository struct {
	mu     sync.RWMutex
	items  map[string]golfer.Golfer
	orders []string
	odds   []golfer.TournamentOdds
}

func NewGolferRepository(golfers []golfer.Golfer, odds []golfer.TournamentOdds) *GolferRepository {
	items := make(map[string]golfer.Golfer, len(golfers))
	orders := make([]string, 0, len(golfers))

	for _, g := range golfers {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &GolferRepository{
		items:  items,
		orders: orders,
		odds:   append([]golfer.TournamentOdds(nil), odds...),
	}
}

func (r *GolferRepository) List(_ context.Context) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.Golfer, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *GolferRepository) GetByID(_ context.Context, id string) (golfer.Golfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]
	if !ok {
		return golfer.Golfer{}, false, nil
	}

	return g, true, nil
}

func (r *GolferRepository) ListOddsByTournament(_ context.Context, tournamentID string, category int) ([]golfer.TournamentOdds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.TournamentOdds, 0, len(r.odds))
	for _, o := range r.odds {
		if o.TournamentID != tournamentID {
			continue
		}
		if category != 0 && o.Category != category {
			continue
		}
		out = append(out, o)
	}

	return out, nil
}
