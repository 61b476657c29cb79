package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/roster"
	idgen "github.com/fairwaylabs/golfpool/internal/platform/id"
)

type PickInput struct {
	GolferID string
	Category int
}

type CreateTeamInput struct {
	UserID  string
	EntryID string
	Picks   []PickInput
}

type ReplaceTeamInput struct {
	UserID string
	TeamID string
	Picks  []PickInput
}

type RosterService struct {
	rosterRepo roster.Repository
	entryRepo  entry.Repository
	leagueRepo league.Repository
	golferRepo golfer.Repository
	rules      roster.Rules
	idGen      idgen.Generator
	now        func() time.Time
}

func NewRosterService(
	rosterRepo roster.Repository,
	entryRepo entry.Repository,
	leagueRepo league.Repository,
	golferRepo golfer.Repository,
	idGen idgen.Generator,
) *RosterService {
	return &RosterService{
		rosterRepo: rosterRepo,
		entryRepo:  entryRepo,
		leagueRepo: leagueRepo,
		golferRepo: golferRepo,
		rules:      roster.DefaultRules(),
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreateTeam locks in the entry's picks. Categories are frozen as submitted,
// checked against the tournament odds sheet where one exists.
func (s *RosterService) CreateTeam(ctx context.Context, input CreateTeamInput) (roster.Team, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.EntryID = strings.TrimSpace(input.EntryID)
	if input.UserID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.EntryID == "" {
		return roster.Team{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, input.EntryID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: entry=%s", ErrNotFound, input.EntryID)
	}
	if e.UserID != input.UserID {
		return roster.Team{}, fmt.Errorf("%w: entry belongs to another user", ErrForbidden)
	}

	l, err := s.modifiableLeague(ctx, e.LeagueID)
	if err != nil {
		return roster.Team{}, err
	}

	picks, err := s.buildPicks(ctx, l.TournamentID, input.Picks)
	if err != nil {
		return roster.Team{}, err
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return roster.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	team := roster.Team{
		ID:        teamID,
		EntryID:   e.ID,
		Picks:     picks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	team.Recompute(s.rules)

	if err := s.rosterRepo.Create(ctx, team); err != nil {
		if errors.Is(err, roster.ErrTeamExists) {
			return roster.Team{}, fmt.Errorf("%w: this entry already has a team", ErrConflict)
		}
		return roster.Team{}, fmt.Errorf("create team: %w", err)
	}

	return team, nil
}

// ReplaceTeam swaps the full pick list. Partial edits are not a thing; the
// client always resubmits all picks.
func (s *RosterService) ReplaceTeam(ctx context.Context, input ReplaceTeamInput) (roster.Team, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.UserID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return roster.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, e, err := s.ownedTeam(ctx, input.UserID, input.TeamID)
	if err != nil {
		return roster.Team{}, err
	}

	l, err := s.modifiableLeague(ctx, e.LeagueID)
	if err != nil {
		return roster.Team{}, err
	}

	picks, err := s.buildPicks(ctx, l.TournamentID, input.Picks)
	if err != nil {
		return roster.Team{}, err
	}

	team.Picks = picks
	team.UpdatedAt = s.now().UTC()
	team.Recompute(s.rules)

	if err := s.rosterRepo.ReplacePicks(ctx, team); err != nil {
		return roster.Team{}, fmt.Errorf("replace team picks: %w", err)
	}

	return team, nil
}

func (s *RosterService) GetTeam(ctx context.Context, userID, teamID string) (roster.Team, error) {
	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return roster.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, _, err := s.ownedTeam(ctx, userID, teamID)
	if err != nil {
		return roster.Team{}, err
	}

	return team, nil
}

// GetTeamByEntry returns the team behind an entry. Owners always see their
// team; other participants of the same league see it once the league has
// closed, so nobody can copy picks while entries are still open.
func (s *RosterService) GetTeamByEntry(ctx context.Context, userID, entryID string) (roster.Team, error) {
	userID = strings.TrimSpace(userID)
	entryID = strings.TrimSpace(entryID)
	if userID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if entryID == "" {
		return roster.Team{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: entry=%s", ErrNotFound, entryID)
	}

	if e.UserID != userID {
		l, exists, err := s.leagueRepo.GetByID(ctx, e.LeagueID)
		if err != nil {
			return roster.Team{}, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return roster.Team{}, fmt.Errorf("%w: league=%s", ErrNotFound, e.LeagueID)
		}
		if _, member, err := s.entryRepo.GetByUserAndLeague(ctx, userID, e.LeagueID); err != nil {
			return roster.Team{}, fmt.Errorf("check league membership: %w", err)
		} else if !member {
			return roster.Team{}, fmt.Errorf("%w: you are not a participant of this league", ErrForbidden)
		}
		if l.Status == league.StatusOpen {
			return roster.Team{}, fmt.Errorf("%w: picks are hidden until the league closes", ErrForbidden)
		}
	}

	team, exists, err := s.rosterRepo.GetByEntry(ctx, entryID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get team by entry: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: entry has no team yet", ErrNotFound)
	}

	return team, nil
}

func (s *RosterService) DeleteTeam(ctx context.Context, userID, teamID string) error {
	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, e, err := s.ownedTeam(ctx, userID, teamID)
	if err != nil {
		return err
	}

	if _, err := s.modifiableLeague(ctx, e.LeagueID); err != nil {
		return err
	}

	if err := s.rosterRepo.Delete(ctx, team.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (s *RosterService) ownedTeam(ctx context.Context, userID, teamID string) (roster.Team, entry.Entry, error) {
	team, exists, err := s.rosterRepo.GetByID(ctx, teamID)
	if err != nil {
		return roster.Team{}, entry.Entry{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return roster.Team{}, entry.Entry{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	e, exists, err := s.entryRepo.GetByID(ctx, team.EntryID)
	if err != nil {
		return roster.Team{}, entry.Entry{}, fmt.Errorf("get entry for team: %w", err)
	}
	if !exists {
		return roster.Team{}, entry.Entry{}, fmt.Errorf("%w: entry=%s", ErrNotFound, team.EntryID)
	}
	if e.UserID != userID {
		return roster.Team{}, entry.Entry{}, fmt.Errorf("%w: team belongs to another user", ErrForbidden)
	}

	return team, e, nil
}

func (s *RosterService) modifiableLeague(ctx context.Context, leagueID string) (league.League, error) {
	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if !league.CanModifyTeam(l.Status) {
		return league.League{}, fmt.Errorf("%w: league is %s, teams are locked", ErrIllegalState, l.Status)
	}

	return l, nil
}

// buildPicks validates the pick list and pins each pick's golfer against the
// known pool. When the tournament has an odds sheet, the submitted category
// must match the sheet.
func (s *RosterService) buildPicks(ctx context.Context, tournamentID string, inputs []PickInput) ([]roster.Pick, error) {
	picks := make([]roster.Pick, 0, len(inputs))
	for _, in := range inputs {
		picks = append(picks, roster.Pick{
			GolferID: strings.TrimSpace(in.GolferID),
			Category: in.Category,
		})
	}

	if err := roster.ValidatePicks(picks, s.rules); err != nil {
		return nil, err
	}

	odds, err := s.golferRepo.ListOddsByTournament(ctx, tournamentID, 0)
	if err != nil {
		return nil, fmt.Errorf("list tournament odds: %w", err)
	}
	categoryByGolfer := make(map[string]int, len(odds))
	for _, o := range odds {
		categoryByGolfer[o.GolferID] = o.Category
	}

	for _, p := range picks {
		if _, exists, err := s.golferRepo.GetByID(ctx, p.GolferID); err != nil {
			return nil, fmt.Errorf("get golfer: %w", err)
		} else if !exists {
			return nil, fmt.Errorf("%w: unknown golfer %s", ErrInvalidInput, p.GolferID)
		}
		if want, ok := categoryByGolfer[p.GolferID]; ok && want != p.Category {
			return nil, fmt.Errorf("%w: golfer %s is category %d for this tournament, got %d", ErrInvalidInput, p.GolferID, want, p.Category)
		}
	}

	return picks, nil
}
