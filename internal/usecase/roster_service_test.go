package usecase

import (
	"errors"
	"testing"

	"github.com/fairwaylabs/golfpool/internal/domain/roster"
)

func validMastersPicks() []PickInput {
	return []PickInput{
		{GolferID: "scottie-scheffler", Category: 1},
		{GolferID: "xander-schauffele", Category: 2},
		{GolferID: "tommy-fleetwood", Category: 3},
		{GolferID: "brian-harman", Category: 4},
		{GolferID: "sahith-theegala", Category: 5},
	}
}

func TestRosterService_CreateTeam(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	team, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   validMastersPicks(),
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if team.TotalCategoryPoints != 15 {
		t.Fatalf("expected category sum 15, got %d", team.TotalCategoryPoints)
	}
	if !team.IsValid {
		t.Fatal("expected a valid team")
	}
}

func TestRosterService_CreateTeam_CategorySumTooLow(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	_, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks: []PickInput{
			{GolferID: "scottie-scheffler", Category: 1},
			{GolferID: "rory-mcilroy", Category: 1},
			{GolferID: "jon-rahm", Category: 1},
			{GolferID: "viktor-hovland", Category: 1},
			{GolferID: "xander-schauffele", Category: 2},
		},
	})
	if !errors.Is(err, roster.ErrCategorySumTooLow) {
		t.Fatalf("expected ErrCategorySumTooLow, got %v", err)
	}
}

func TestRosterService_CreateTeam_CategoryMismatch(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	picks := validMastersPicks()
	picks[0].Category = 3 // Scheffler is category 1 on the Masters sheet

	_, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   picks,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_CreateTeam_UnknownGolfer(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	picks := validMastersPicks()
	picks[4] = PickInput{GolferID: "happy-gilmore", Category: 5}

	_, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   picks,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_CreateTeam_SecondTeamForEntry(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	input := CreateTeamInput{UserID: "user-2", EntryID: e.ID, Picks: validMastersPicks()}
	if _, err := f.rosters.CreateTeam(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := f.rosters.CreateTeam(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRosterService_CreateTeam_ForeignEntry(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	_, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-3",
		EntryID: e.ID,
		Picks:   validMastersPicks(),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRosterService_ReplaceTeam_LockedLeague(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	team, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   validMastersPicks(),
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if _, err := f.leagues.AdvanceStatus(ctx, "user-1", l.ID, "closed"); err != nil {
		t.Fatalf("advance status: %v", err)
	}

	_, err = f.rosters.ReplaceTeam(ctx, ReplaceTeamInput{
		UserID: "user-2",
		TeamID: team.ID,
		Picks:  validMastersPicks(),
	})
	if !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestRosterService_ReplaceTeam(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	team, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   validMastersPicks(),
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	replaced, err := f.rosters.ReplaceTeam(ctx, ReplaceTeamInput{
		UserID: "user-2",
		TeamID: team.ID,
		Picks: []PickInput{
			{GolferID: "rory-mcilroy", Category: 1},
			{GolferID: "patrick-cantlay", Category: 2},
			{GolferID: "brooks-koepka", Category: 3},
			{GolferID: "jason-day", Category: 4},
			{GolferID: "rickie-fowler", Category: 5},
		},
	})
	if err != nil {
		t.Fatalf("replace team: %v", err)
	}
	if replaced.Picks[0].GolferID != "rory-mcilroy" {
		t.Fatalf("picks not replaced: %+v", replaced.Picks)
	}

	stored, err := f.rosters.GetTeam(ctx, "user-2", team.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if stored.Picks[0].GolferID != "rory-mcilroy" {
		t.Fatalf("stored picks not replaced: %+v", stored.Picks)
	}
}

func TestRosterService_GetTeamByEntry_HiddenWhileOpen(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	if _, err := f.rosters.CreateTeam(ctx, CreateTeamInput{
		UserID:  "user-2",
		EntryID: e.ID,
		Picks:   validMastersPicks(),
	}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	// The creator is a participant but may not peek while entries are open.
	if _, err := f.rosters.GetTeamByEntry(ctx, "user-1", e.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden while open, got %v", err)
	}

	if _, err := f.leagues.AdvanceStatus(ctx, "user-1", l.ID, "closed"); err != nil {
		t.Fatalf("advance status: %v", err)
	}

	if _, err := f.rosters.GetTeamByEntry(ctx, "user-1", e.ID); err != nil {
		t.Fatalf("expected visible team after close, got %v", err)
	}
}
