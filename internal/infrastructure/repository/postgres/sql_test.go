package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/roster"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection reset")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestAsDomainConstraintError(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"leagues_invitation_code_key", league.ErrInvitationCodeTaken},
		{"entries_user_league_key", entry.ErrAlreadyExists},
		{"teams_entry_key", roster.ErrTeamExists},
	}

	for _, tt := range tests {
		err := &pq.Error{Code: uniqueViolationCode, Constraint: tt.constraint}
		got := asDomainConstraintError(fmt.Errorf("insert: %w", err))
		if !errors.Is(got, tt.want) {
			t.Errorf("constraint %s: got %v, want %v", tt.constraint, got, tt.want)
		}
	}
}

func TestAsDomainConstraintError_IgnoresOtherErrors(t *testing.T) {
	if got := asDomainConstraintError(errors.New("plain failure")); got != nil {
		t.Fatalf("expected nil for plain error, got %v", got)
	}

	fkErr := &pq.Error{Code: "23503", Constraint: "entries_league_fk"}
	if got := asDomainConstraintError(fkErr); got != nil {
		t.Fatalf("expected nil for foreign key violation, got %v", got)
	}

	unknown := &pq.Error{Code: uniqueViolationCode, Constraint: "some_other_key"}
	if got := asDomainConstraintError(unknown); got != nil {
		t.Fatalf("expected nil for unmapped constraint, got %v", got)
	}
}
