package memory

import (
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
)

const (
	TournamentIDMasters         = "masters-2026"
	TournamentIDPGAChampionship = "pga-championship-2026"
	TournamentIDUSOpen          = "us-open-2026"
	TournamentIDTheOpen         = "the-open-2026"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:       TournamentIDMasters,
			Name:     "Masters Tournament",
			Location: "Augusta National Golf Club, Georgia",
			StartAt:  time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
			Status:   tournament.StatusUpcoming,
		},
		{
			ID:       TournamentIDPGAChampionship,
			Name:     "PGA Championship",
			Location: "Quail Hollow Club, North Carolina",
			StartAt:  time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
			Status:   tournament.StatusUpcoming,
		},
		{
			ID:       TournamentIDUSOpen,
			Name:     "U.S. Open",
			Location: "Oakmont Country Club, Pennsylvania",
			StartAt:  time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC),
			Status:   tournament.StatusUpcoming,
		},
		{
			ID:       TournamentIDTheOpen,
			Name:     "The Open Championship",
			Location: "Royal Birkdale, England",
			StartAt:  time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC),
			Status:   tournament.StatusUpcoming,
		},
	}
}

func SeedGolfers() []golfer.Golfer {
	return []golfer.Golfer{
		{ID: "scottie-scheffler", Name: "Scottie Scheffler", Country: "USA", WorldRanking: 1},
		{ID: "rory-mcilroy", Name: "Rory McIlroy", Country: "Northern Ireland", WorldRanking: 2},
		{ID: "jon-rahm", Name: "Jon Rahm", Country: "Spain", WorldRanking: 3},
		{ID: "viktor-hovland", Name: "Viktor Hovland", Country: "Norway", WorldRanking: 4},
		{ID: "xander-schauffele", Name: "Xander Schauffele", Country: "USA", WorldRanking: 5},
		{ID: "patrick-cantlay", Name: "Patrick Cantlay", Country: "USA", WorldRanking: 6},
		{ID: "collin-morikawa", Name: "Collin Morikawa", Country: "USA", WorldRanking: 7},
		{ID: "ludvig-aberg", Name: "Ludvig Aberg", Country: "Sweden", WorldRanking: 8},
		{ID: "tyrrell-hatton", Name: "Tyrrell Hatton", Country: "England", WorldRanking: 9},
		{ID: "tommy-fleetwood", Name: "Tommy Fleetwood", Country: "England", WorldRanking: 10},
		{ID: "brooks-koepka", Name: "Brooks Koepka", Country: "USA", WorldRanking: 11},
		{ID: "max-homa", Name: "Max Homa", Country: "USA", WorldRanking: 12},
		{ID: "wyndham-clark", Name: "Wyndham Clark", Country: "USA", WorldRanking: 13},
		{ID: "matt-fitzpatrick", Name: "Matt Fitzpatrick", Country: "England", WorldRanking: 14},
		{ID: "brian-harman", Name: "Brian Harman", Country: "USA", WorldRanking: 15},
		{ID: "louis-oosthuizen", Name: "Louis Oosthuizen", Country: "South Africa", WorldRanking: 35},
		{ID: "sahith-theegala", Name: "Sahith Theegala", Country: "USA", WorldRanking: 40},
		{ID: "tom-kim", Name: "Tom Kim", Country: "South Korea", WorldRanking: 22},
		{ID: "cameron-young", Name: "Cameron Young", Country: "USA", WorldRanking: 18},
		{ID: "russell-henley", Name: "Russell Henley", Country: "USA", WorldRanking: 25},
		{ID: "tony-finau", Name: "Tony Finau", Country: "USA", WorldRanking: 16},
		{ID: "justin-thomas", Name: "Justin Thomas", Country: "USA", WorldRanking: 17},
		{ID: "sam-burns", Name: "Sam Burns", Country: "USA", WorldRanking: 19},
		{ID: "jason-day", Name: "Jason Day", Country: "Australia", WorldRanking: 20},
		{ID: "rickie-fowler", Name: "Rickie Fowler", Country: "USA", WorldRanking: 28},
	}
}

// SeedMastersOdds is the odds sheet for the Masters. Categories band golfers
// by winning odds: 1 favorites through 5 long shots.
func SeedMastersOdds() []golfer.TournamentOdds {
	return []golfer.TournamentOdds{
		{GolferID: "scottie-scheffler", TournamentID: TournamentIDMasters, Category: 1, Odds: 5.5},
		{GolferID: "rory-mcilroy", TournamentID: TournamentIDMasters, Category: 1, Odds: 8.0},
		{GolferID: "jon-rahm", TournamentID: TournamentIDMasters, Category: 1, Odds: 9.0},
		{GolferID: "viktor-hovland", TournamentID: TournamentIDMasters, Category: 1, Odds: 10.0},

		{GolferID: "xander-schauffele", TournamentID: TournamentIDMasters, Category: 2, Odds: 12.0},
		{GolferID: "patrick-cantlay", TournamentID: TournamentIDMasters, Category: 2, Odds: 14.0},
		{GolferID: "collin-morikawa", TournamentID: TournamentIDMasters, Category: 2, Odds: 16.0},
		{GolferID: "ludvig-aberg", TournamentID: TournamentIDMasters, Category: 2, Odds: 18.0},
		{GolferID: "tyrrell-hatton", TournamentID: TournamentIDMasters, Category: 2, Odds: 20.0},
		{GolferID: "tony-finau", TournamentID: TournamentIDMasters, Category: 2, Odds: 22.0},
		{GolferID: "justin-thomas", TournamentID: TournamentIDMasters, Category: 2, Odds: 24.0},

		{GolferID: "tommy-fleetwood", TournamentID: TournamentIDMasters, Category: 3, Odds: 30.0},
		{GolferID: "brooks-koepka", TournamentID: TournamentIDMasters, Category: 3, Odds: 33.0},
		{GolferID: "max-homa", TournamentID: TournamentIDMasters, Category: 3, Odds: 35.0},
		{GolferID: "wyndham-clark", TournamentID: TournamentIDMasters, Category: 3, Odds: 40.0},
		{GolferID: "matt-fitzpatrick", TournamentID: TournamentIDMasters, Category: 3, Odds: 45.0},
		{GolferID: "sam-burns", TournamentID: TournamentIDMasters, Category: 3, Odds: 48.0},

		{GolferID: "brian-harman", TournamentID: TournamentIDMasters, Category: 4, Odds: 55.0},
		{GolferID: "louis-oosthuizen", TournamentID: TournamentIDMasters, Category: 4, Odds: 65.0},
		{GolferID: "tom-kim", TournamentID: TournamentIDMasters, Category: 4, Odds: 70.0},
		{GolferID: "cameron-young", TournamentID: TournamentIDMasters, Category: 4, Odds: 80.0},
		{GolferID: "jason-day", TournamentID: TournamentIDMasters, Category: 4, Odds: 90.0},

		{GolferID: "sahith-theegala", TournamentID: TournamentIDMasters, Category: 5, Odds: 110.0},
		{GolferID: "russell-henley", TournamentID: TournamentIDMasters, Category: 5, Odds: 125.0},
		{GolferID: "rickie-fowler", TournamentID: TournamentIDMasters, Category: 5, Odds: 150.0},
	}
}
