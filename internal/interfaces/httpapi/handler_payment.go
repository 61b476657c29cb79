package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/fairwaylabs/golfpool/external/paymentgw"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

const webhookSignatureHeader = "X-Webhook-Signature"

func (h *Handler) RequestEntryCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequestEntryCheckout")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	entryID := strings.TrimSpace(r.PathValue("entryID"))

	checkoutURL, err := h.paymentService.RequestCheckout(ctx, principal.UserID, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "request checkout failed", "user_id", principal.UserID, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, checkoutSessionDTO{CheckoutURL: checkoutURL})
}

// PaymentWebhook receives provider payment events. The raw body is verified
// against the shared webhook secret before anything is decoded from it.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PaymentWebhook")
	defer span.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read webhook body: %v", usecase.ErrInvalidInput, err))
		return
	}

	if !paymentgw.VerifySignature(h.webhookSecret, body, r.Header.Get(webhookSignatureHeader)) {
		h.logger.WarnContext(ctx, "payment webhook signature rejected", "remote_addr", r.RemoteAddr)
		writeError(ctx, w, fmt.Errorf("%w: invalid webhook signature", usecase.ErrUnauthorized))
		return
	}

	var req paymentWebhookRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.paymentService.ApplyPaymentNotification(ctx, usecase.PaymentEventInput{
		Type:      req.Type,
		EntryID:   req.EntryID,
		AmountNet: req.AmountNet,
	}); err != nil {
		h.logger.WarnContext(ctx, "apply payment notification failed", "event_type", req.Type, "entry_id", req.EntryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment webhook processed", "event_type", req.Type, "entry_id", req.EntryID)
	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"received": true})
}
