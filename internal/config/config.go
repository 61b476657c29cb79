package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fairwaylabs/golfpool/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	DBURL                         string
	DBDisablePreparedBinary       bool
	CacheEnabled                  bool
	CacheTTL                      time.Duration
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	PprofEnabled                  bool
	PprofAddr                     string
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	AccountsBaseURL               string
	AccountsIntrospectPath        string
	AccountsAdminKey              string
	AccountsTimeout               time.Duration
	AccountsCacheTTL              time.Duration
	AccountsCacheMaxEntries       int
	AccountsCircuitEnabled        bool
	AccountsCircuitFailureCount   int
	AccountsCircuitOpenTimeout    time.Duration
	AccountsCircuitHalfOpenMaxReq int
	PaymentsEnabled               bool
	PaymentsBaseURL               string
	PaymentsAPIKey                string
	PaymentsReturnBaseURL         string
	PaymentsCurrency              string
	PaymentsTimeout               time.Duration
	PaymentsMaxRetries            int
	PaymentsCircuitEnabled        bool
	PaymentsCircuitFailureCount   int
	PaymentsCircuitOpenTimeout    time.Duration
	PaymentsCircuitHalfOpenMaxReq int
	PaymentWebhookSecret          string
	InternalJobToken              string
	LeaderboardRefreshWorkers     int
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofAddr == "" {
		pprofAddr = ":6060"
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	accountsTimeout, err := time.ParseDuration(getEnv("ACCOUNTS_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_TIMEOUT: %w", err)
	}
	if accountsTimeout <= 0 {
		return Config{}, fmt.Errorf("ACCOUNTS_TIMEOUT must be > 0")
	}
	accountsCacheTTL, err := time.ParseDuration(getEnv("ACCOUNTS_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CACHE_TTL: %w", err)
	}
	accountsCacheMaxEntries, err := getEnvAsInt("ACCOUNTS_CACHE_MAX_ENTRIES", 10000)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CACHE_MAX_ENTRIES: %w", err)
	}
	if accountsCacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("ACCOUNTS_CACHE_MAX_ENTRIES must be >= 0")
	}
	accountsCircuitEnabled, err := strconv.ParseBool(getEnv("ACCOUNTS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_ENABLED: %w", err)
	}
	accountsCircuitFailureCount, err := getEnvAsInt("ACCOUNTS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if accountsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	accountsCircuitOpenTimeout, err := time.ParseDuration(getEnv("ACCOUNTS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if accountsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	accountsCircuitHalfOpenMaxReq, err := getEnvAsInt("ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if accountsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	paymentsEnabled, err := strconv.ParseBool(getEnv("PAYMENTS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_ENABLED: %w", err)
	}
	paymentsBaseURL := strings.TrimSpace(getEnv("PAYMENTS_BASE_URL", ""))
	paymentsAPIKey := strings.TrimSpace(getEnv("PAYMENTS_API_KEY", ""))
	paymentsReturnBaseURL := strings.TrimSpace(getEnv("PAYMENTS_RETURN_BASE_URL", ""))
	paymentWebhookSecret := strings.TrimSpace(getEnv("PAYMENT_WEBHOOK_SECRET", ""))
	if paymentsEnabled {
		if paymentsBaseURL == "" {
			return Config{}, fmt.Errorf("PAYMENTS_BASE_URL is required when PAYMENTS_ENABLED=true")
		}
		if paymentsAPIKey == "" {
			return Config{}, fmt.Errorf("PAYMENTS_API_KEY is required when PAYMENTS_ENABLED=true")
		}
		if paymentsReturnBaseURL == "" {
			return Config{}, fmt.Errorf("PAYMENTS_RETURN_BASE_URL is required when PAYMENTS_ENABLED=true")
		}
		if paymentWebhookSecret == "" {
			return Config{}, fmt.Errorf("PAYMENT_WEBHOOK_SECRET is required when PAYMENTS_ENABLED=true")
		}
	}
	paymentsTimeout, err := time.ParseDuration(getEnv("PAYMENTS_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_TIMEOUT: %w", err)
	}
	if paymentsTimeout <= 0 {
		return Config{}, fmt.Errorf("PAYMENTS_TIMEOUT must be > 0")
	}
	paymentsMaxRetries, err := getEnvAsInt("PAYMENTS_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_MAX_RETRIES: %w", err)
	}
	if paymentsMaxRetries < 0 {
		return Config{}, fmt.Errorf("PAYMENTS_MAX_RETRIES must be >= 0")
	}
	paymentsCircuitEnabled, err := strconv.ParseBool(getEnv("PAYMENTS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_CIRCUIT_ENABLED: %w", err)
	}
	paymentsCircuitFailureCount, err := getEnvAsInt("PAYMENTS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if paymentsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("PAYMENTS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	paymentsCircuitOpenTimeout, err := time.ParseDuration(getEnv("PAYMENTS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if paymentsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PAYMENTS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	paymentsCircuitHalfOpenMaxReq, err := getEnvAsInt("PAYMENTS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PAYMENTS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if paymentsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("PAYMENTS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	leaderboardRefreshWorkers, err := getEnvAsInt("LEADERBOARD_REFRESH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEADERBOARD_REFRESH_WORKERS: %w", err)
	}
	if leaderboardRefreshWorkers < 1 {
		return Config{}, fmt.Errorf("LEADERBOARD_REFRESH_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "golfpool-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                         strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		AccountsBaseURL:               getEnv("ACCOUNTS_BASE_URL", "http://localhost:8081"),
		AccountsIntrospectPath:        getEnv("ACCOUNTS_INTROSPECT_PATH", "/v1/auth/introspect"),
		AccountsAdminKey:              getEnv("ACCOUNTS_ADMIN_KEY", ""),
		AccountsTimeout:               accountsTimeout,
		AccountsCacheTTL:              accountsCacheTTL,
		AccountsCacheMaxEntries:       accountsCacheMaxEntries,
		AccountsCircuitEnabled:        accountsCircuitEnabled,
		AccountsCircuitFailureCount:   accountsCircuitFailureCount,
		AccountsCircuitOpenTimeout:    accountsCircuitOpenTimeout,
		AccountsCircuitHalfOpenMaxReq: accountsCircuitHalfOpenMaxReq,
		PaymentsEnabled:               paymentsEnabled,
		PaymentsBaseURL:               paymentsBaseURL,
		PaymentsAPIKey:                paymentsAPIKey,
		PaymentsReturnBaseURL:         paymentsReturnBaseURL,
		PaymentsCurrency:              strings.TrimSpace(getEnv("PAYMENTS_CURRENCY", "USD")),
		PaymentsTimeout:               paymentsTimeout,
		PaymentsMaxRetries:            paymentsMaxRetries,
		PaymentsCircuitEnabled:        paymentsCircuitEnabled,
		PaymentsCircuitFailureCount:   paymentsCircuitFailureCount,
		PaymentsCircuitOpenTimeout:    paymentsCircuitOpenTimeout,
		PaymentsCircuitHalfOpenMaxReq: paymentsCircuitHalfOpenMaxReq,
		PaymentWebhookSecret:          paymentWebhookSecret,
		InternalJobToken:              strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		LeaderboardRefreshWorkers:     leaderboardRefreshWorkers,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
