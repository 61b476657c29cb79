package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fairwaylabs/golfpool/internal/usecase"
)

func (h *Handler) ListMyEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyEntries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	entries, err := h.entryService.ListMyEntries(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list my entries failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryToDTO(ctx, e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEntry")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	entryID := strings.TrimSpace(r.PathValue("entryID"))

	found, err := h.entryService.GetEntry(ctx, principal.UserID, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "get entry failed", "user_id", principal.UserID, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entryToDTO(ctx, found))
}

func (h *Handler) LeaveLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaveLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	entryID := strings.TrimSpace(r.PathValue("entryID"))

	if err := h.entryService.LeaveLeague(ctx, principal.UserID, entryID); err != nil {
		h.logger.WarnContext(ctx, "leave league failed", "user_id", principal.UserID, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "left"})
}

// UpdateEntryScore is only reachable through the internal job routes; the
// scoring pipeline is the single writer of entry totals.
func (h *Handler) UpdateEntryScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEntryScore")
	defer span.End()

	entryID := strings.TrimSpace(r.PathValue("entryID"))

	var req updateEntryScoreRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.entryService.UpdateScore(ctx, entryID, req.TotalScore)
	if err != nil {
		h.logger.WarnContext(ctx, "update entry score failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entryToDTO(ctx, updated))
}
