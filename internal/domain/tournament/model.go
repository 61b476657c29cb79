package tournament

import "time"

// Status follows the event calendar, not league state.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Tournament is a real-world golf event leagues attach to.
type Tournament struct {
	ID        string
	Name      string
	Location  string
	StartAt   time.Time
	EndAt     time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
