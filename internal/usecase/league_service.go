package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
	idgen "github.com/fairwaylabs/golfpool/internal/platform/id"
)

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const inviteCodeLength = 8
const maxInviteCodeAttempts = 5

type CreateLeagueInput struct {
	UserID          string
	Username        string
	Name            string
	TournamentID    string
	EntryFee        float64
	MaxParticipants int
}

type JoinLeagueInput struct {
	UserID         string
	Username       string
	InvitationCode string
}

type LeagueService struct {
	leagueRepo     league.Repository
	entryRepo      entry.Repository
	tournamentRepo tournament.Repository
	idGen          idgen.Generator
	now            func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	entryRepo entry.Repository,
	tournamentRepo tournament.Repository,
	idGen idgen.Generator,
) *LeagueService {
	return &LeagueService{
		leagueRepo:     leagueRepo,
		entryRepo:      entryRepo,
		tournamentRepo: tournamentRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

// CreateLeague opens a new league on a tournament. The creator gets an entry
// immediately, so the league is never observable without at least one
// participant.
func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	if input.UserID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if input.TournamentID == "" {
		return league.League{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if input.EntryFee < 0 {
		return league.League{}, fmt.Errorf("%w: entry fee must not be negative", ErrInvalidInput)
	}
	if input.MaxParticipants < 2 {
		return league.League{}, fmt.Errorf("%w: league needs room for at least 2 participants", ErrInvalidInput)
	}

	t, exists, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
	if err != nil {
		return league.League{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, input.TournamentID)
	}
	if t.Status == tournament.StatusCompleted {
		return league.League{}, fmt.Errorf("%w: tournament %s has already finished", ErrIllegalState, t.Name)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	entryID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate creator entry id: %w", err)
	}

	now := s.now().UTC()
	creatorEntry := entry.Entry{
		ID:            entryID,
		UserID:        input.UserID,
		Username:      input.Username,
		LeagueID:      leagueID,
		PaymentStatus: entryPaymentStatusForFee(input.EntryFee),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Invitation codes are short, so collisions happen. Retry with a fresh
	// code instead of surfacing the constraint violation.
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code, codeErr := generateInvitationCode(inviteCodeLength)
		if codeErr != nil {
			return league.League{}, fmt.Errorf("generate invitation code: %w", codeErr)
		}

		l := league.League{
			ID:              leagueID,
			Name:            input.Name,
			CreatorID:       input.UserID,
			TournamentID:    input.TournamentID,
			EntryFee:        input.EntryFee,
			InvitationCode:  code,
			Status:          league.StatusOpen,
			MaxParticipants: input.MaxParticipants,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		createErr := s.leagueRepo.Create(ctx, l, creatorEntry)
		if createErr == nil {
			return l, nil
		}
		if errors.Is(createErr, league.ErrInvitationCodeTaken) {
			continue
		}
		return league.League{}, fmt.Errorf("create league: %w", createErr)
	}

	return league.League{}, fmt.Errorf("allocate invitation code after %d attempts", maxInviteCodeAttempts)
}

// JoinLeague adds the user to the league behind an invitation code. The
// returned entry starts unpaid.
func (s *LeagueService) JoinLeague(ctx context.Context, input JoinLeagueInput) (entry.Entry, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Username = strings.TrimSpace(input.Username)
	input.InvitationCode = strings.ToUpper(strings.TrimSpace(input.InvitationCode))
	if input.UserID == "" {
		return entry.Entry{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.InvitationCode == "" {
		return entry.Entry{}, fmt.Errorf("%w: invitation code is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByInvitationCode(ctx, input.InvitationCode)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("get league by invitation code: %w", err)
	}
	if !exists {
		return entry.Entry{}, fmt.Errorf("%w: invitation code not found", ErrNotFound)
	}

	if l.Status != league.StatusOpen {
		return entry.Entry{}, fmt.Errorf("%w: league is %s and no longer accepting entries", ErrIllegalState, l.Status)
	}

	count, err := s.entryRepo.CountByLeague(ctx, l.ID)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("count league entries: %w", err)
	}
	if count >= l.MaxParticipants {
		return entry.Entry{}, fmt.Errorf("%w: league is full", ErrConflict)
	}

	if _, joined, err := s.entryRepo.GetByUserAndLeague(ctx, input.UserID, l.ID); err != nil {
		return entry.Entry{}, fmt.Errorf("check existing entry: %w", err)
	} else if joined {
		return entry.Entry{}, fmt.Errorf("%w: you already joined this league", ErrConflict)
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return entry.Entry{}, fmt.Errorf("generate entry id: %w", err)
	}

	now := s.now().UTC()
	e := entry.Entry{
		ID:            entryID,
		UserID:        input.UserID,
		Username:      input.Username,
		LeagueID:      l.ID,
		PaymentStatus: entryPaymentStatusForFee(l.EntryFee),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.entryRepo.Create(ctx, e); err != nil {
		if errors.Is(err, entry.ErrAlreadyExists) {
			return entry.Entry{}, fmt.Errorf("%w: you already joined this league", ErrConflict)
		}
		return entry.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return e, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return l, nil
}

func (s *LeagueService) ListMyLeagues(ctx context.Context, userID string) ([]league.League, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	return leagues, nil
}

// ListEntries returns the league's entries. Only participants may look.
func (s *LeagueService) ListEntries(ctx context.Context, userID, leagueID string) ([]entry.Entry, error) {
	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	if _, member, err := s.entryRepo.GetByUserAndLeague(ctx, userID, leagueID); err != nil {
		return nil, fmt.Errorf("check league membership: %w", err)
	} else if !member {
		return nil, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
	}

	entries, err := s.entryRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list entries by league: %w", err)
	}

	return entries, nil
}

// DeleteLeague removes a league. Only the creator may delete, and only while
// the league is still open.
func (s *LeagueService) DeleteLeague(ctx context.Context, userID, leagueID string) error {
	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if l.CreatorID != userID {
		return fmt.Errorf("%w: only the league creator can delete it", ErrForbidden)
	}
	if l.Status != league.StatusOpen {
		return fmt.Errorf("%w: league is %s and can no longer be deleted", ErrIllegalState, l.Status)
	}

	if err := s.leagueRepo.Delete(ctx, leagueID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	return nil
}

// AdvanceStatus moves the league forward in its lifecycle. Status never moves
// backwards.
func (s *LeagueService) AdvanceStatus(ctx context.Context, userID, leagueID, nextStatus string) (league.League, error) {
	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	next, err := league.ParseStatus(nextStatus)
	if err != nil {
		return league.League{}, fmt.Errorf("%w: unknown league status %q", ErrInvalidInput, nextStatus)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if l.CreatorID != userID {
		return league.League{}, fmt.Errorf("%w: only the league creator can change its status", ErrForbidden)
	}
	if !league.CanTransition(l.Status, next) {
		return league.League{}, fmt.Errorf("%w: cannot move league from %s to %s", ErrIllegalState, l.Status, next)
	}

	if err := s.leagueRepo.UpdateStatus(ctx, leagueID, next); err != nil {
		return league.League{}, fmt.Errorf("update league status: %w", err)
	}

	l.Status = next
	l.UpdatedAt = s.now().UTC()
	return l, nil
}

// Free leagues skip the checkout flow entirely.
func entryPaymentStatusForFee(entryFee float64) entry.PaymentStatus {
	if entryFee == 0 {
		return entry.PaymentStatusPaid
	}
	return entry.PaymentStatusPending
}

func generateInvitationCode(length int) (string, error) {
	if length < 6 {
		length = 6
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes for invitation code: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(out), nil
}
