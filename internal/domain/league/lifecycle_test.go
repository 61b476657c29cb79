package league

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusOpen, StatusClosed, true},
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusCompleted, true},
		{StatusClosed, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusOpen, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
		{StatusInProgress, StatusClosed, false},
		{StatusCompleted, StatusOpen, false},
		{StatusCompleted, StatusCompleted, false},
		{Status("bogus"), StatusOpen, false},
		{StatusOpen, Status("bogus"), false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %t, want %t", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanJoin(t *testing.T) {
	if !CanJoin(StatusOpen, 0, 50) {
		t.Error("expected join allowed for empty open league")
	}
	if !CanJoin(StatusOpen, 49, 50) {
		t.Error("expected join allowed with one slot left")
	}
	if CanJoin(StatusOpen, 50, 50) {
		t.Error("expected join rejected for full league")
	}
	if CanJoin(StatusClosed, 0, 50) {
		t.Error("expected join rejected for closed league")
	}
	if CanJoin(StatusInProgress, 0, 50) {
		t.Error("expected join rejected once tournament started")
	}
}

func TestCanModifyTeam(t *testing.T) {
	if !CanModifyTeam(StatusOpen) {
		t.Error("expected team edits allowed while open")
	}
	for _, status := range []Status{StatusClosed, StatusInProgress, StatusCompleted} {
		if CanModifyTeam(status) {
			t.Errorf("expected team edits rejected for status %s", status)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"open", "closed", "in_progress", "completed"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}
