package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PaymentsRequiredFieldsWhenEnabled(t *testing.T) {
	base := func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("PAYMENTS_ENABLED", "true")
		t.Setenv("PAYMENTS_BASE_URL", "https://pay.example.com")
		t.Setenv("PAYMENTS_API_KEY", "sk-test")
		t.Setenv("PAYMENTS_RETURN_BASE_URL", "https://golfpool.example.com")
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "whsec-test")
	}

	t.Run("all set loads", func(t *testing.T) {
		base(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.PaymentsEnabled {
			t.Fatalf("expected PaymentsEnabled=true")
		}
		if cfg.PaymentsCurrency != "USD" {
			t.Fatalf("unexpected PaymentsCurrency: %q", cfg.PaymentsCurrency)
		}
	})

	t.Run("missing api key fails", func(t *testing.T) {
		base(t)
		t.Setenv("PAYMENTS_API_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when PAYMENTS_ENABLED=true without PAYMENTS_API_KEY")
		}
	})

	t.Run("missing webhook secret fails", func(t *testing.T) {
		base(t)
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when PAYMENTS_ENABLED=true without PAYMENT_WEBHOOK_SECRET")
		}
	})
}

func TestLoad_AccountsClientParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ACCOUNTS_BASE_URL", "https://accounts.example.com")
	t.Setenv("ACCOUNTS_TIMEOUT", "5s")
	t.Setenv("ACCOUNTS_CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AccountsBaseURL != "https://accounts.example.com" {
		t.Fatalf("unexpected AccountsBaseURL: %q", cfg.AccountsBaseURL)
	}
	if cfg.AccountsTimeout != 5*time.Second {
		t.Fatalf("unexpected AccountsTimeout: %s", cfg.AccountsTimeout)
	}
	if cfg.AccountsCacheTTL != 2*time.Minute {
		t.Fatalf("unexpected AccountsCacheTTL: %s", cfg.AccountsCacheTTL)
	}
	if cfg.AccountsIntrospectPath != "/v1/auth/introspect" {
		t.Fatalf("unexpected AccountsIntrospectPath: %q", cfg.AccountsIntrospectPath)
	}
}

func TestLoad_LeaderboardWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("LEADERBOARD_REFRESH_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when LEADERBOARD_REFRESH_WORKERS < 1")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
