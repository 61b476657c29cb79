package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fairwaylabs/golfpool/internal/usecase"
)

func (h *Handler) GetLeagueLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueLeaderboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	view, err := h.leaderboardService.View(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardViewToDTO(ctx, view))
}

// RefreshLeagueLeaderboard recomputes one league's standings on demand.
// Reading and refreshing share the compute-and-persist path, so this returns
// the same view as the GET.
func (h *Handler) RefreshLeagueLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshLeagueLeaderboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	view, err := h.leaderboardService.View(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh leaderboard failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardViewToDTO(ctx, view))
}

// RunLeaderboardRefreshJob recomputes standings for the requested leagues, or
// for every in-progress league when the body names none. The scheduler calls
// this through the internal job routes.
func (h *Handler) RunLeaderboardRefreshJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLeaderboardRefreshJob")
	defer span.End()

	var req refreshLeaderboardsRequest
	if r.ContentLength != 0 {
		if err := h.decodeRequest(r.Body, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		if err := h.validateRequest(ctx, req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	var (
		result usecase.RefreshResult
		err    error
	)
	if len(req.LeagueIDs) > 0 {
		result, err = h.leaderboardService.RefreshLeagues(ctx, req.LeagueIDs)
	} else {
		result, err = h.leaderboardService.RefreshActive(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard refresh job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "leaderboard refresh job finished",
		"total", result.Total, "succeeded", result.Succeeded, "failed", result.Failed)
	writeSuccess(ctx, w, http.StatusOK, refreshResultToDTO(ctx, result))
}
