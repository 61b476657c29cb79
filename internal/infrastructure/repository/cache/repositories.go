package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
	basecache "github.com/fairwaylabs/golfpool/internal/platform/cache"
)

// Decorators for the read-mostly reference data. Tournaments and golfers come
// from an upstream feed and change rarely, so short-TTL caching in front of
// the database absorbs nearly all of the browse traffic.

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, "tournament:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) ListFuture(ctx context.Context, after time.Time) ([]tournament.Tournament, error) {
	// Bucket the cache key by hour so the cached window still moves forward.
	key := "tournament:future:" + after.UTC().Format("2006010215")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListFuture(ctx, after)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	key := "tournament:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cached.value, cached.exists, nil
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

type GolferRepository struct {
	next  golfer.Repository
	cache *basecache.Store
}

func NewGolferRepository(next golfer.Repository, cache *basecache.Store) *GolferRepository {
	return &GolferRepository{next: next, cache: cache}
}

func (r *GolferRepository) List(ctx context.Context) ([]golfer.Golfer, error) {
	v, err := r.cache.GetOrLoad(ctx, "golfer:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]golfer.Golfer(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]golfer.Golfer)
	return append([]golfer.Golfer(nil), items...), nil
}

func (r *GolferRepository) GetByID(ctx context.Context, id string) (golfer.Golfer, bool, error) {
	key := "golfer:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedGolferByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return golfer.Golfer{}, false, err
	}

	cached, _ := v.(cachedGolferByID)
	return cached.value, cached.exists, nil
}

type cachedGolferByID struct {
	value  golfer.Golfer
	exists bool
}

func (r *GolferRepository) ListOddsByTournament(ctx context.Context, tournamentID string, category int) ([]golfer.TournamentOdds, error) {
	key := "golfer:odds:" + tournamentID + ":" + strconv.Itoa(category)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListOddsByTournament(ctx, tournamentID, category)
		if err != nil {
			return nil, err
		}
		return append([]golfer.TournamentOdds(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]golfer.TournamentOdds)
	return append([]golfer.TournamentOdds(nil), items...), nil
}
