package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
)

const defaultRefreshWorkers = 4

// LeaderboardView is the participant-facing leaderboard with display names
// resolved.
type LeaderboardView struct {
	Leaderboard    leaderboard.Leaderboard
	LeagueName     string
	LeagueStatus   league.Status
	TournamentName string
}

type RefreshFailure struct {
	LeagueID string
	Message  string
}

type RefreshResult struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []RefreshFailure
}

type LeaderboardService struct {
	leaderboardRepo leaderboard.Repository
	leagueRepo      league.Repository
	entryRepo       entry.Repository
	tournamentRepo  tournament.Repository
	workers         int
	now             func() time.Time
}

func NewLeaderboardService(
	leaderboardRepo leaderboard.Repository,
	leagueRepo league.Repository,
	entryRepo entry.Repository,
	tournamentRepo tournament.Repository,
	workers int,
) *LeaderboardService {
	if workers <= 0 {
		workers = defaultRefreshWorkers
	}
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		leagueRepo:      leagueRepo,
		entryRepo:       entryRepo,
		tournamentRepo:  tournamentRepo,
		workers:         workers,
		now:             time.Now,
	}
}

// Compute recomputes the league's leaderboard from current entries and
// persists the snapshot. Reading and refreshing are the same operation, so a
// leaderboard can never be staler than its last read.
func (s *LeaderboardService) Compute(ctx context.Context, leagueID string) (leaderboard.Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Compute")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return leaderboard.Leaderboard{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return leaderboard.Leaderboard{}, fmt.Errorf("get league: %w", err)
	} else if !exists {
		return leaderboard.Leaderboard{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	// Every league gets its leaderboard record at creation. A league without
	// one is a data-integrity problem, not something to quietly re-create.
	if _, exists, err := s.leaderboardRepo.GetByLeague(ctx, leagueID); err != nil {
		return leaderboard.Leaderboard{}, fmt.Errorf("get leaderboard: %w", err)
	} else if !exists {
		return leaderboard.Leaderboard{}, fmt.Errorf("%w: leaderboard missing for league=%s", ErrNotFound, leagueID)
	}

	entries, err := s.entryRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return leaderboard.Leaderboard{}, fmt.Errorf("list entries by league: %w", err)
	}

	pool := leaderboard.PrizePool(entries)
	first, second, third := leaderboard.SplitPrizes(pool)
	lb := leaderboard.Leaderboard{
		LeagueID:         leagueID,
		PrizePool:        pool,
		FirstPlacePrize:  first,
		SecondPlacePrize: second,
		ThirdPlacePrize:  third,
		Rankings:         leaderboard.Rank(entries, first, second, third),
		LastUpdated:      s.now().UTC(),
	}

	if err := s.leaderboardRepo.Save(ctx, lb); err != nil {
		return leaderboard.Leaderboard{}, fmt.Errorf("save leaderboard: %w", err)
	}

	return lb, nil
}

// View returns the freshly computed leaderboard with league and tournament
// names resolved. Only participants may look.
func (s *LeaderboardService) View(ctx context.Context, userID, leagueID string) (LeaderboardView, error) {
	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return LeaderboardView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return LeaderboardView{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeaderboardView{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeaderboardView{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	if _, member, err := s.entryRepo.GetByUserAndLeague(ctx, userID, leagueID); err != nil {
		return LeaderboardView{}, fmt.Errorf("check league membership: %w", err)
	} else if !member {
		return LeaderboardView{}, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
	}

	lb, err := s.Compute(ctx, leagueID)
	if err != nil {
		return LeaderboardView{}, err
	}

	view := LeaderboardView{
		Leaderboard:  lb,
		LeagueName:   l.Name,
		LeagueStatus: l.Status,
	}
	if t, exists, err := s.tournamentRepo.GetByID(ctx, l.TournamentID); err != nil {
		return LeaderboardView{}, fmt.Errorf("get tournament: %w", err)
	} else if exists {
		view.TournamentName = t.Name
	}

	return view, nil
}

// RefreshActive recomputes leaderboards for every league whose tournament is
// being played. Called by the scoring job after it pushes score updates.
func (s *LeaderboardService) RefreshActive(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.RefreshActive")
	defer span.End()

	ids, err := s.leagueRepo.ListIDsByStatus(ctx, league.StatusInProgress)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("list in-progress leagues: %w", err)
	}

	return s.RefreshLeagues(ctx, ids)
}

// RefreshLeagues recomputes the given leagues' leaderboards concurrently.
// Failures are collected per league rather than aborting the batch.
func (s *LeaderboardService) RefreshLeagues(ctx context.Context, leagueIDs []string) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.RefreshLeagues")
	defer span.End()

	ids := make([]string, 0, len(leagueIDs))
	for _, id := range leagueIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	result := RefreshResult{Total: len(ids)}
	if len(ids) == 0 {
		return result, nil
	}

	workerCount := s.workers
	if workerCount > len(ids) {
		workerCount = len(ids)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	failures := make(chan RefreshFailure, len(ids))
	var succeeded atomic.Int32

	var workers sync.WaitGroup
	for _, id := range ids {
		id := id
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if _, computeErr := s.Compute(ctx, id); computeErr != nil {
				failures <- RefreshFailure{LeagueID: id, Message: computeErr.Error()}
				return
			}
			succeeded.Add(1)
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit refresh to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	for failure := range failures {
		result.Failures = append(result.Failures, failure)
	}
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].LeagueID < result.Failures[j].LeagueID
	})

	result.Succeeded = int(succeeded.Load())
	result.Failed = len(result.Failures)
	return result, nil
}
