package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
)

type EntryService struct {
	entryRepo  entry.Repository
	leagueRepo league.Repository
	now        func() time.Time
}

func NewEntryService(entryRepo entry.Repository, leagueRepo league.Repository) *EntryService {
	return &EntryService{
		entryRepo:  entryRepo,
		leagueRepo: leagueRepo,
		now:        time.Now,
	}
}

func (s *EntryService) GetEntry(ctx context.Context, userID, entryID string) (entry.Entry, error) {
	userID = strings.TrimSpace(userID)
	entryID = strings.TrimSpace(entryID)
	if userID == "" {
		return entry.Entry{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if entryID == "" {
		return entry.Entry{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return entry.Entry{}, fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}
	if e.UserID != userID {
		return entry.Entry{}, fmt.Errorf("%w: entry belongs to another user", ErrForbidden)
	}

	return e, nil
}

func (s *EntryService) ListMyEntries(ctx context.Context, userID string) ([]entry.Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries by user: %w", err)
	}

	return entries, nil
}

// UpdateScore overwrites an entry's tournament score. Scores come from the
// scoring feed, never from players; route-level auth enforces that.
func (s *EntryService) UpdateScore(ctx context.Context, entryID string, totalScore float64) (entry.Entry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entry.Entry{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return entry.Entry{}, fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}

	if err := s.entryRepo.UpdateScore(ctx, entryID, totalScore); err != nil {
		return entry.Entry{}, fmt.Errorf("update entry score: %w", err)
	}

	e.TotalScore = totalScore
	e.UpdatedAt = s.now().UTC()
	return e, nil
}

// LeaveLeague withdraws an unpaid entry from an open league. Paid entries are
// locked in; refunds go through the payment provider, not through leaving.
func (s *EntryService) LeaveLeague(ctx context.Context, userID, entryID string) error {
	userID = strings.TrimSpace(userID)
	entryID = strings.TrimSpace(entryID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if entryID == "" {
		return fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}
	if e.UserID != userID {
		return fmt.Errorf("%w: entry belongs to another user", ErrForbidden)
	}
	if e.PaymentStatus == entry.PaymentStatusPaid {
		return fmt.Errorf("%w: entry has been paid and cannot be withdrawn", ErrPaymentLocked)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, e.LeagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, e.LeagueID)
	}
	if l.CreatorID == userID {
		return fmt.Errorf("%w: the league creator cannot leave their own league", ErrIllegalState)
	}
	if l.Status != league.StatusOpen {
		return fmt.Errorf("%w: league is %s, entries are locked", ErrIllegalState, l.Status)
	}

	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}
