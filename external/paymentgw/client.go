package paymentgw

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairwaylabs/golfpool/internal/platform/logging"
	"github.com/fairwaylabs/golfpool/internal/platform/resilience"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

const defaultCurrency = "USD"

var errPayGateTransient = crerr.New("payment gateway transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	ReturnBaseURL  string
	Currency       string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client creates hosted checkout sessions on the payment provider. Entry
// state changes come back through the webhook, never from this client.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	returnBaseURL  string
	currency       string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		returnBaseURL:  strings.TrimRight(strings.TrimSpace(cfg.ReturnBaseURL), "/"),
		currency:       currency,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type checkoutSessionRequest struct {
	Reference   string            `json:"reference"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	SuccessURL  string            `json:"success_url"`
	CancelURL   string            `json:"cancel_url"`
	Metadata    map[string]string `json:"metadata"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req usecase.CheckoutRequest) (string, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "payment gateway circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("%w: payment provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	baseURL, err := validateHTTPBaseURL(c.baseURL)
	if err != nil {
		return "", crerr.Wrap(err, "invalid PAYMENTS_BASE_URL")
	}

	payload := checkoutSessionRequest{
		Reference:   req.EntryID,
		Amount:      req.Amount,
		Currency:    c.currency,
		Description: buildCheckoutDescription(req.LeagueName),
		SuccessURL:  c.returnBaseURL + "/leagues/" + req.LeagueID + "?payment=success",
		CancelURL:   c.returnBaseURL + "/leagues/" + req.LeagueID + "?payment=cancelled",
		Metadata: map[string]string{
			"entry_id":  req.EntryID,
			"league_id": req.LeagueID,
			"user_id":   req.UserID,
		},
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", crerr.Wrap(err, "marshal checkout session request")
	}

	sessionsURL := baseURL + "/v1/checkout/sessions"
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("paymentgw.sessions_url", sessionsURL),
			attribute.String("paymentgw.entry_id", req.EntryID),
			attribute.String("paymentgw.league_id", req.LeagueID),
			attribute.Float64("paymentgw.amount", req.Amount),
		)
	}
	c.logger.InfoContext(ctx, "payment gateway checkout session request",
		"entry_id", req.EntryID, "league_id", req.LeagueID, "amount", req.Amount, "currency", c.currency)

	raw, err := c.executeRequest(ctx, sessionsURL, body)
	c.recordCircuitResult(err)
	if err != nil {
		return "", err
	}

	var decoded checkoutSessionResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", crerr.Wrap(err, "decode checkout session response")
	}
	if strings.TrimSpace(decoded.URL) == "" {
		return "", crerr.New("checkout session response has empty url")
	}

	c.logger.InfoContext(ctx, "payment gateway checkout session created",
		"entry_id", req.EntryID, "session_id", decoded.ID)
	return decoded.URL, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(string(body)))
		if err != nil {
			return nil, crerr.Wrap(err, "create checkout session request")
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send checkout session request: %v", errPayGateTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read checkout session response: %v", errPayGateTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errPayGateTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("checkout session request failed")
	}
	c.logger.WarnContext(ctx, "payment gateway request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err != nil && stderrors.Is(err, errPayGateTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func buildCheckoutDescription(leagueName string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("Entry fee")
	if name := strings.TrimSpace(leagueName); name != "" {
		_, _ = buf.WriteString(" for ")
		_, _ = buf.WriteString(name)
	}
	return buf.String()
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const max = 512
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max] + "...(truncated)"
}

func maxInt(value, floor int) int {
	if value < floor {
		return floor
	}
	return value
}
