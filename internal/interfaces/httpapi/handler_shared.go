package httpapi

import (
	"context"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
	"github.com/fairwaylabs/golfpool/internal/domain/roster"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

type createLeagueRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	TournamentID    string  `json:"tournament_id" validate:"required"`
	EntryFee        float64 `json:"entry_fee" validate:"gte=0"`
	MaxParticipants int     `json:"max_participants" validate:"required,gte=2,lte=1000"`
}

type joinLeagueRequest struct {
	InvitationCode string `json:"invitation_code" validate:"required,max=32"`
}

type advanceLeagueStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type pickRequest struct {
	GolferID string `json:"golfer_id" validate:"required"`
	Category int    `json:"category" validate:"required,gte=1,lte=5"`
}

type createTeamRequest struct {
	EntryID string        `json:"entry_id" validate:"required"`
	Picks   []pickRequest `json:"picks" validate:"required,len=5,dive"`
}

type replaceTeamRequest struct {
	Picks []pickRequest `json:"picks" validate:"required,len=5,dive"`
}

type updateEntryScoreRequest struct {
	TotalScore float64 `json:"total_score"`
}

type paymentWebhookRequest struct {
	Type      string   `json:"type" validate:"required"`
	EntryID   string   `json:"entry_id" validate:"required"`
	AmountNet *float64 `json:"amount_net,omitempty"`
}

type refreshLeaderboardsRequest struct {
	LeagueIDs []string `json:"league_ids" validate:"omitempty,dive,required"`
}

type leagueDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CreatorID       string  `json:"creator_id"`
	TournamentID    string  `json:"tournament_id"`
	EntryFee        float64 `json:"entry_fee"`
	InvitationCode  string  `json:"invitation_code"`
	Status          string  `json:"status"`
	MaxParticipants int     `json:"max_participants"`
	CreatedAtUTC    string  `json:"created_at_utc"`
	UpdatedAtUTC    string  `json:"updated_at_utc"`
}

type entryDTO struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Username      string  `json:"username,omitempty"`
	LeagueID      string  `json:"league_id"`
	PaymentStatus string  `json:"payment_status"`
	AmountPaid    float64 `json:"amount_paid"`
	TotalScore    float64 `json:"total_score"`
	CreatedAtUTC  string  `json:"created_at_utc"`
	UpdatedAtUTC  string  `json:"updated_at_utc"`
}

type pickDTO struct {
	GolferID string  `json:"golfer_id"`
	Category int     `json:"category"`
	Score    float64 `json:"score"`
}

type teamDTO struct {
	ID                  string    `json:"id"`
	EntryID             string    `json:"entry_id"`
	Picks               []pickDTO `json:"picks"`
	TotalCategoryPoints int       `json:"total_category_points"`
	IsValid             bool      `json:"is_valid"`
	CreatedAtUTC        string    `json:"created_at_utc"`
	UpdatedAtUTC        string    `json:"updated_at_utc"`
}

type rankingDTO struct {
	EntryID  string  `json:"entry_id"`
	UserID   string  `json:"user_id"`
	Username string  `json:"username,omitempty"`
	Position int     `json:"position"`
	Score    float64 `json:"score"`
	Prize    float64 `json:"prize"`
}

type leaderboardDTO struct {
	LeagueID         string       `json:"league_id"`
	LeagueName       string       `json:"league_name,omitempty"`
	LeagueStatus     string       `json:"league_status,omitempty"`
	TournamentName   string       `json:"tournament_name,omitempty"`
	PrizePool        float64      `json:"prize_pool"`
	FirstPlacePrize  float64      `json:"first_place_prize"`
	SecondPlacePrize float64      `json:"second_place_prize"`
	ThirdPlacePrize  float64      `json:"third_place_prize"`
	Rankings         []rankingDTO `json:"rankings"`
	LastUpdatedUTC   string       `json:"last_updated_utc"`
}

type refreshFailureDTO struct {
	LeagueID string `json:"league_id"`
	Message  string `json:"message"`
}

type refreshResultDTO struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Failures  []refreshFailureDTO `json:"failures,omitempty"`
}

type checkoutSessionDTO struct {
	CheckoutURL string `json:"checkout_url"`
}

type tournamentDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	StartAtUTC string `json:"start_at_utc"`
	EndAtUTC   string `json:"end_at_utc"`
	Status     string `json:"status"`
}

type golferDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country,omitempty"`
	WorldRanking int    `json:"world_ranking"`
}

type tournamentOddsDTO struct {
	GolferID     string  `json:"golfer_id"`
	TournamentID string  `json:"tournament_id"`
	Category     int     `json:"category"`
	Odds         float64 `json:"odds"`
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:              v.ID,
		Name:            v.Name,
		CreatorID:       v.CreatorID,
		TournamentID:    v.TournamentID,
		EntryFee:        v.EntryFee,
		InvitationCode:  v.InvitationCode,
		Status:          string(v.Status),
		MaxParticipants: v.MaxParticipants,
		CreatedAtUTC:    v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC:    v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func entryToDTO(ctx context.Context, v entry.Entry) entryDTO {
	ctx, span := startSpan(ctx, "httpapi.entryToDTO")
	defer span.End()

	return entryDTO{
		ID:            v.ID,
		UserID:        v.UserID,
		Username:      v.Username,
		LeagueID:      v.LeagueID,
		PaymentStatus: string(v.PaymentStatus),
		AmountPaid:    v.AmountPaid,
		TotalScore:    v.TotalScore,
		CreatedAtUTC:  v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC:  v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func teamToDTO(ctx context.Context, v roster.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	picks := make([]pickDTO, 0, len(v.Picks))
	for _, pick := range v.Picks {
		picks = append(picks, pickDTO{
			GolferID: pick.GolferID,
			Category: pick.Category,
			Score:    pick.Score,
		})
	}

	return teamDTO{
		ID:                  v.ID,
		EntryID:             v.EntryID,
		Picks:               picks,
		TotalCategoryPoints: v.TotalCategoryPoints,
		IsValid:             v.IsValid,
		CreatedAtUTC:        v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC:        v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func leaderboardToDTO(ctx context.Context, v leaderboard.Leaderboard) leaderboardDTO {
	ctx, span := startSpan(ctx, "httpapi.leaderboardToDTO")
	defer span.End()

	rankings := make([]rankingDTO, 0, len(v.Rankings))
	for _, ranking := range v.Rankings {
		rankings = append(rankings, rankingDTO{
			EntryID:  ranking.EntryID,
			UserID:   ranking.UserID,
			Username: ranking.Username,
			Position: ranking.Position,
			Score:    ranking.Score,
			Prize:    ranking.Prize,
		})
	}

	return leaderboardDTO{
		LeagueID:         v.LeagueID,
		PrizePool:        v.PrizePool,
		FirstPlacePrize:  v.FirstPlacePrize,
		SecondPlacePrize: v.SecondPlacePrize,
		ThirdPlacePrize:  v.ThirdPlacePrize,
		Rankings:         rankings,
		LastUpdatedUTC:   v.LastUpdated.UTC().Format(time.RFC3339),
	}
}

func leaderboardViewToDTO(ctx context.Context, v usecase.LeaderboardView) leaderboardDTO {
	dto := leaderboardToDTO(ctx, v.Leaderboard)
	dto.LeagueName = v.LeagueName
	dto.LeagueStatus = string(v.LeagueStatus)
	dto.TournamentName = v.TournamentName
	return dto
}

func refreshResultToDTO(ctx context.Context, v usecase.RefreshResult) refreshResultDTO {
	ctx, span := startSpan(ctx, "httpapi.refreshResultToDTO")
	defer span.End()

	failures := make([]refreshFailureDTO, 0, len(v.Failures))
	for _, failure := range v.Failures {
		failures = append(failures, refreshFailureDTO{
			LeagueID: failure.LeagueID,
			Message:  failure.Message,
		})
	}

	return refreshResultDTO{
		Total:     v.Total,
		Succeeded: v.Succeeded,
		Failed:    v.Failed,
		Failures:  failures,
	}
}

func tournamentToDTO(ctx context.Context, v tournament.Tournament) tournamentDTO {
	ctx, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	return tournamentDTO{
		ID:         v.ID,
		Name:       v.Name,
		Location:   v.Location,
		StartAtUTC: v.StartAt.UTC().Format(time.RFC3339),
		EndAtUTC:   v.EndAt.UTC().Format(time.RFC3339),
		Status:     string(v.Status),
	}
}

func golferToDTO(ctx context.Context, v golfer.Golfer) golferDTO {
	ctx, span := startSpan(ctx, "httpapi.golferToDTO")
	defer span.End()

	return golferDTO{
		ID:           v.ID,
		Name:         v.Name,
		Country:      v.Country,
		WorldRanking: v.WorldRanking,
	}
}

func tournamentOddsToDTO(ctx context.Context, v golfer.TournamentOdds) tournamentOddsDTO {
	ctx, span := startSpan(ctx, "httpapi.tournamentOddsToDTO")
	defer span.End()

	return tournamentOddsDTO{
		GolferID:     v.GolferID,
		TournamentID: v.TournamentID,
		Category:     v.Category,
		Odds:         v.Odds,
	}
}

func picksFromRequest(picks []pickRequest) []usecase.PickInput {
	out := make([]usecase.PickInput, 0, len(picks))
	for _, pick := range picks {
		out = append(out, usecase.PickInput{
			GolferID: pick.GolferID,
			Category: pick.Category,
		})
	}
	return out
}
