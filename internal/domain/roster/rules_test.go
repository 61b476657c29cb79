package roster

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePicks(t *testing.T) {
	rules := DefaultRules()
	validPicks := []Pick{
		{GolferID: "g1", Category: 1},
		{GolferID: "g2", Category: 2},
		{GolferID: "g3", Category: 3},
		{GolferID: "g4", Category: 4},
		{GolferID: "g5", Category: 5},
	}

	tests := []struct {
		name      string
		mutate    func([]Pick) []Pick
		targetErr error
	}{
		{
			name:      "valid picks",
			mutate:    func(picks []Pick) []Pick { return picks },
			targetErr: nil,
		},
		{
			name:      "minimum legal sum",
			mutate:    func(picks []Pick) []Pick { picks[4].Category = 3; return picks }, // 1+2+3+4+3 = 13
			targetErr: nil,
		},
		{
			name:      "too few picks",
			mutate:    func(picks []Pick) []Pick { return picks[:4] },
			targetErr: ErrWrongPickCount,
		},
		{
			name: "too many picks",
			mutate: func(picks []Pick) []Pick {
				return append(picks, Pick{GolferID: "g6", Category: 5})
			},
			targetErr: ErrWrongPickCount,
		},
		{
			name:      "duplicate golfer",
			mutate:    func(picks []Pick) []Pick { picks[1].GolferID = "g1"; return picks },
			targetErr: ErrDuplicateGolfer,
		},
		{
			name:      "category below range",
			mutate:    func(picks []Pick) []Pick { picks[0].Category = 0; return picks },
			targetErr: ErrInvalidCategory,
		},
		{
			name:      "category above range",
			mutate:    func(picks []Pick) []Pick { picks[0].Category = 6; return picks },
			targetErr: ErrInvalidCategory,
		},
		{
			name: "sum too low",
			mutate: func(picks []Pick) []Pick {
				for i := range picks {
					picks[i].Category = 2
				}
				return picks
			},
			targetErr: ErrCategorySumTooLow,
		},
		{
			name: "duplicate beats category range",
			mutate: func(picks []Pick) []Pick {
				picks[1].GolferID = "g1"
				picks[2].Category = 9
				return picks
			},
			targetErr: ErrDuplicateGolfer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picks := tt.mutate(append([]Pick(nil), validPicks...))

			err := ValidatePicks(picks, rules)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected error %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestValidatePicksReportsAchievedSum(t *testing.T) {
	picks := []Pick{
		{GolferID: "g1", Category: 2},
		{GolferID: "g2", Category: 2},
		{GolferID: "g3", Category: 2},
		{GolferID: "g4", Category: 3},
		{GolferID: "g5", Category: 3},
	}

	err := ValidatePicks(picks, DefaultRules())
	if !errors.Is(err, ErrCategorySumTooLow) {
		t.Fatalf("expected ErrCategorySumTooLow, got %v", err)
	}
	if !strings.Contains(err.Error(), "got 12") {
		t.Fatalf("expected message to report the achieved sum 12, got %q", err.Error())
	}
}

func TestTeamRecompute(t *testing.T) {
	rules := DefaultRules()

	team := Team{
		ID:      "t1",
		EntryID: "e1",
		Picks: []Pick{
			{GolferID: "g1", Category: 3},
			{GolferID: "g2", Category: 3},
			{GolferID: "g3", Category: 3},
			{GolferID: "g4", Category: 2},
			{GolferID: "g5", Category: 2},
		},
	}

	team.Recompute(rules)
	if team.TotalCategoryPoints != 13 {
		t.Fatalf("expected total 13, got %d", team.TotalCategoryPoints)
	}
	if !team.IsValid {
		t.Fatal("expected team to be valid")
	}

	team.Picks[0].Category = 1
	team.Recompute(rules)
	if team.TotalCategoryPoints != 11 {
		t.Fatalf("expected total 11, got %d", team.TotalCategoryPoints)
	}
	if team.IsValid {
		t.Fatal("expected team to be invalid after category drop")
	}

	team.Picks = team.Picks[:4]
	team.Recompute(rules)
	if team.IsValid {
		t.Fatal("expected team with 4 picks to be invalid regardless of sum")
	}
}
