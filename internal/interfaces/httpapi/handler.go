package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/fairwaylabs/golfpool/internal/platform/logging"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leagueService      *usecase.LeagueService
	rosterService      *usecase.RosterService
	entryService       *usecase.EntryService
	paymentService     *usecase.PaymentService
	leaderboardService *usecase.LeaderboardService
	referenceService   *usecase.ReferenceService
	webhookSecret      string
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	rosterService *usecase.RosterService,
	entryService *usecase.EntryService,
	paymentService *usecase.PaymentService,
	leaderboardService *usecase.LeaderboardService,
	referenceService *usecase.ReferenceService,
	webhookSecret string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:      leagueService,
		rosterService:      rosterService,
		entryService:       entryService,
		paymentService:     paymentService,
		leaderboardService: leaderboardService,
		referenceService:   referenceService,
		webhookSecret:      webhookSecret,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(body io.Reader, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
