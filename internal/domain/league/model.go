package league

import (
	"fmt"
	"time"
)

// Status captures where a league sits in its one-way lifecycle. Open leagues
// accept entries and team edits; everything after open is read-only for
// participants while scores accumulate.
type Status string

const (
	StatusOpen       Status = "open"
	StatusClosed     Status = "closed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var statusOrder = map[Status]int{
	StatusOpen:       0,
	StatusClosed:     1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if _, ok := statusOrder[s]; !ok {
		return "", fmt.Errorf("unknown league status: %q", value)
	}
	return s, nil
}

// League is a private contest tied to one golf tournament.
type League struct {
	ID              string
	Name            string
	CreatorID       string
	TournamentID    string
	EntryFee        float64
	InvitationCode  string
	Status          Status
	MaxParticipants int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.CreatorID == "" {
		return fmt.Errorf("league creator id is required")
	}
	if l.TournamentID == "" {
		return fmt.Errorf("league tournament id is required")
	}
	if l.EntryFee < 0 {
		return fmt.Errorf("league entry fee cannot be negative")
	}
	if l.InvitationCode == "" {
		return fmt.Errorf("league invitation code is required")
	}
	if l.MaxParticipants <= 0 {
		return fmt.Errorf("league max participants must be greater than zero")
	}
	if _, ok := statusOrder[l.Status]; !ok {
		return fmt.Errorf("invalid league status: %s", l.Status)
	}

	return nil
}
