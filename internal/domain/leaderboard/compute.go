package leaderboard

import (
	"math"
	"sort"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
)

const (
	firstPlaceShare  = 0.60
	secondPlaceShare = 0.30
	thirdPlaceShare  = 0.10
)

// PrizePool sums the currency actually received across all entries, net of
// processor fees. An earlier entryCount*entryFee formula is superseded: only
// collected money is distributable.
func PrizePool(entries []entry.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.AmountPaid
	}
	return round2(total)
}

// SplitPrizes divides the pool 60/30/10, each share rounded to cents
// independently. No remainder reconciliation: the three shares may sum to
// slightly less or more than the pool.
func SplitPrizes(pool float64) (first, second, third float64) {
	return round2(pool * firstPlaceShare), round2(pool * secondPlaceShare), round2(pool * thirdPlaceShare)
}

// Rank orders entries by total score descending and assigns strictly
// sequential 1-based positions. Ties break by entry creation time, then by
// entry ID, so the ordering is deterministic regardless of storage backend.
// Prizes attach to positions 1-3 only.
func Rank(entries []entry.Entry, first, second, third float64) []Ranking {
	sorted := append([]entry.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalScore != sorted[j].TotalScore {
			return sorted[i].TotalScore > sorted[j].TotalScore
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	rankings := make([]Ranking, 0, len(sorted))
	for idx, e := range sorted {
		position := idx + 1
		prize := 0.0
		switch position {
		case 1:
			prize = first
		case 2:
			prize = second
		case 3:
			prize = third
		}
		rankings = append(rankings, Ranking{
			EntryID:  e.ID,
			UserID:   e.UserID,
			Username: e.Username,
			Position: position,
			Score:    e.TotalScore,
			Prize:    prize,
		})
	}

	return rankings
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
