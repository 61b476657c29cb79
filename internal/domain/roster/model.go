package roster

import (
	"fmt"
	"time"
)

// Pick is a single golfer selection within a team. The category is captured
// at selection time and never recomputed, so later changes to the odds
// catalog cannot silently change a team's legality.
type Pick struct {
	GolferID string
	Category int
	Score    float64
}

// Team is the 5-golfer lineup owned by one entry.
type Team struct {
	ID                  string
	EntryID             string
	Picks               []Pick
	TotalCategoryPoints int
	IsValid             bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Recompute re-derives the stored validity fields from the concrete pick
// list. The same sum rule is enforced at the input boundary; the persisted
// flags must never disagree with a fresh recomputation over the picks.
func (t *Team) Recompute(rules Rules) {
	t.TotalCategoryPoints = CategorySum(t.Picks)
	t.IsValid = len(t.Picks) == rules.PickCount && t.TotalCategoryPoints >= rules.MinCategorySum
}

func (t Team) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.EntryID == "" {
		return fmt.Errorf("team entry id is required")
	}
	if len(t.Picks) == 0 {
		return fmt.Errorf("team picks are required")
	}

	return nil
}
