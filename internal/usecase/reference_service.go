package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
)

// ReferenceService serves the browse data players pick from: the tournament
// calendar, the golfer pool, and per-tournament odds sheets.
type ReferenceService struct {
	tournamentRepo tournament.Repository
	golferRepo     golfer.Repository
	now            func() time.Time
}

func NewReferenceService(tournamentRepo tournament.Repository, golferRepo golfer.Repository) *ReferenceService {
	return &ReferenceService{
		tournamentRepo: tournamentRepo,
		golferRepo:     golferRepo,
		now:            time.Now,
	}
}

func (s *ReferenceService) ListTournaments(ctx context.Context, futureOnly bool) ([]tournament.Tournament, error) {
	if futureOnly {
		items, err := s.tournamentRepo.ListFuture(ctx, s.now().UTC())
		if err != nil {
			return nil, fmt.Errorf("list future tournaments: %w", err)
		}
		return items, nil
	}

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return t, nil
}

func (s *ReferenceService) ListGolfers(ctx context.Context) ([]golfer.Golfer, error) {
	items, err := s.golferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) GetGolfer(ctx context.Context, golferID string) (golfer.Golfer, error) {
	golferID = strings.TrimSpace(golferID)
	if golferID == "" {
		return golfer.Golfer{}, fmt.Errorf("%w: golfer id is required", ErrInvalidInput)
	}

	g, exists, err := s.golferRepo.GetByID(ctx, golferID)
	if err != nil {
		return golfer.Golfer{}, fmt.Errorf("get golfer: %w", err)
	}
	if !exists {
		return golfer.Golfer{}, fmt.Errorf("%w: golfer=%s", ErrNotFound, golferID)
	}

	return g, nil
}

// ListTournamentOdds returns the odds sheet for a tournament, optionally
// filtered to one category. Category 0 means all categories.
func (s *ReferenceService) ListTournamentOdds(ctx context.Context, tournamentID string, category int) ([]golfer.TournamentOdds, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if category < 0 || category > 5 {
		return nil, fmt.Errorf("%w: category must be between 1 and 5", ErrInvalidInput)
	}

	if _, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	odds, err := s.golferRepo.ListOddsByTournament(ctx, tournamentID, category)
	if err != nil {
		return nil, fmt.Errorf("list tournament odds: %w", err)
	}

	return odds, nil
}
