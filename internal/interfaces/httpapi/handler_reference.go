package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fairwaylabs/golfpool/internal/usecase"
)

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	futureOnly := false
	if raw := strings.TrimSpace(r.URL.Query().Get("future")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid future filter %q", usecase.ErrInvalidInput, raw))
			return
		}
		futureOnly = parsed
	}

	tournaments, err := h.referenceService.ListTournaments(ctx, futureOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentToDTO(ctx, t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	found, err := h.referenceService.GetTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(ctx, found))
}

func (h *Handler) ListTournamentOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentOdds")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))

	category := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid category filter %q", usecase.ErrInvalidInput, raw))
			return
		}
		category = parsed
	}

	odds, err := h.referenceService.ListTournamentOdds(ctx, tournamentID, category)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournament odds failed", "tournament_id", tournamentID, "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentOddsDTO, 0, len(odds))
	for _, o := range odds {
		items = append(items, tournamentOddsToDTO(ctx, o))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListGolfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfers")
	defer span.End()

	golfers, err := h.referenceService.ListGolfers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list golfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]golferDTO, 0, len(golfers))
	for _, g := range golfers {
		items = append(items, golferToDTO(ctx, g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGolfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGolfer")
	defer span.End()

	golferID := strings.TrimSpace(r.PathValue("golferID"))
	found, err := h.referenceService.GetGolfer(ctx, golferID)
	if err != nil {
		h.logger.WarnContext(ctx, "get golfer failed", "golfer_id", golferID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, golferToDTO(ctx, found))
}
