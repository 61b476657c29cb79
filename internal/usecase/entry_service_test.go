package usecase

import (
	"errors"
	"testing"
)

func TestEntryService_LeaveLeague(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	if err := f.entries.LeaveLeague(ctx, "user-2", e.ID); err != nil {
		t.Fatalf("leave league: %v", err)
	}

	if _, exists, _ := f.entryRepo.GetByID(ctx, e.ID); exists {
		t.Fatal("entry still present after leaving")
	}

	// Leaving frees the seat for a rejoin.
	f.mustJoin(t, ctx, "user-2", l.InvitationCode)
}

func TestEntryService_LeaveLeague_PaidEntryLocked(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	if err := f.payments.ApplyPaymentNotification(ctx, PaymentEventInput{
		Type:    PaymentEventCheckoutCompleted,
		EntryID: e.ID,
	}); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	if err := f.entries.LeaveLeague(ctx, "user-2", e.ID); !errors.Is(err, ErrPaymentLocked) {
		t.Fatalf("expected ErrPaymentLocked, got %v", err)
	}
}

func TestEntryService_LeaveLeague_CreatorCannotLeave(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e, _, err := f.entryRepo.GetByUserAndLeague(ctx, "user-1", l.ID)
	if err != nil {
		t.Fatalf("get creator entry: %v", err)
	}

	if err := f.entries.LeaveLeague(ctx, "user-1", e.ID); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestEntryService_LeaveLeague_ForeignEntry(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	if err := f.entries.LeaveLeague(ctx, "user-3", e.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEntryService_UpdateScore(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	l := f.mustCreateLeague(t, ctx, "user-1", 50)
	e := f.mustJoin(t, ctx, "user-2", l.InvitationCode)

	updated, err := f.entries.UpdateScore(ctx, e.ID, 182.5)
	if err != nil {
		t.Fatalf("update score: %v", err)
	}
	if updated.TotalScore != 182.5 {
		t.Fatalf("expected score 182.5, got %v", updated.TotalScore)
	}

	stored, _, _ := f.entryRepo.GetByID(ctx, e.ID)
	if stored.TotalScore != 182.5 {
		t.Fatalf("stored score %v", stored.TotalScore)
	}
}

func TestEntryService_ListMyEntries(t *testing.T) {
	f := newFixture()
	ctx := t.Context()

	first := f.mustCreateLeague(t, ctx, "user-1", 50)
	second := f.mustCreateLeague(t, ctx, "user-3", 25)
	f.mustJoin(t, ctx, "user-2", first.InvitationCode)
	f.mustJoin(t, ctx, "user-2", second.InvitationCode)

	entries, err := f.entries.ListMyEntries(ctx, "user-2")
	if err != nil {
		t.Fatalf("list my entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
