package roster

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPickCount    = errors.New("wrong pick count")
	ErrDuplicateGolfer   = errors.New("duplicate golfer in team")
	ErrInvalidCategory   = errors.New("category out of range")
	ErrCategorySumTooLow = errors.New("category sum below minimum")
)

// Rules stores team composition validation parameters.
type Rules struct {
	PickCount      int
	MinCategory    int
	MaxCategory    int
	MinCategorySum int
}

func DefaultRules() Rules {
	return Rules{
		PickCount:      5,
		MinCategory:    1,
		MaxCategory:    5,
		MinCategorySum: 13,
	}
}

// ValidatePicks decides team legality. Checks run in a fixed order and the
// first failure wins: pick count, duplicate golfers, category range, then
// category sum. It is a pure predicate and mutates nothing.
func ValidatePicks(picks []Pick, rules Rules) error {
	if len(picks) != rules.PickCount {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongPickCount, rules.PickCount, len(picks))
	}

	golferSet := make(map[string]struct{}, len(picks))
	for _, pick := range picks {
		if pick.GolferID == "" {
			return fmt.Errorf("golfer id is required")
		}
		if _, exists := golferSet[pick.GolferID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateGolfer, pick.GolferID)
		}
		golferSet[pick.GolferID] = struct{}{}
	}

	for _, pick := range picks {
		if pick.Category < rules.MinCategory || pick.Category > rules.MaxCategory {
			return fmt.Errorf("%w: golfer=%s category=%d allowed=[%d,%d]",
				ErrInvalidCategory, pick.GolferID, pick.Category, rules.MinCategory, rules.MaxCategory)
		}
	}

	if sum := CategorySum(picks); sum < rules.MinCategorySum {
		return fmt.Errorf("%w: got %d, need at least %d", ErrCategorySumTooLow, sum, rules.MinCategorySum)
	}

	return nil
}

func CategorySum(picks []Pick) int {
	total := 0
	for _, pick := range picks {
		total += pick.Category
	}
	return total
}
