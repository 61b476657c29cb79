package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	_ "github.com/lib/pq"

	"github.com/fairwaylabs/golfpool/external/paymentgw"
	"github.com/fairwaylabs/golfpool/internal/config"
	"github.com/fairwaylabs/golfpool/internal/domain/entry"
	"github.com/fairwaylabs/golfpool/internal/domain/golfer"
	"github.com/fairwaylabs/golfpool/internal/domain/leaderboard"
	"github.com/fairwaylabs/golfpool/internal/domain/league"
	"github.com/fairwaylabs/golfpool/internal/domain/roster"
	"github.com/fairwaylabs/golfpool/internal/domain/tournament"
	"github.com/fairwaylabs/golfpool/internal/infrastructure/account"
	cacherepo "github.com/fairwaylabs/golfpool/internal/infrastructure/repository/cache"
	"github.com/fairwaylabs/golfpool/internal/infrastructure/repository/memory"
	"github.com/fairwaylabs/golfpool/internal/infrastructure/repository/postgres"
	"github.com/fairwaylabs/golfpool/internal/interfaces/httpapi"
	basecache "github.com/fairwaylabs/golfpool/internal/platform/cache"
	idgen "github.com/fairwaylabs/golfpool/internal/platform/id"
	"github.com/fairwaylabs/golfpool/internal/platform/logging"
	"github.com/fairwaylabs/golfpool/internal/platform/resilience"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

type repositories struct {
	leagues      league.Repository
	entries      entry.Repository
	rosters      roster.Repository
	tournaments  tournament.Repository
	golfers      golfer.Repository
	leaderboards leaderboard.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup closes the database pool and must
// be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeRepos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	idGen := idgen.NewRandomGenerator()

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.entries, repos.tournaments, idGen)
	rosterSvc := usecase.NewRosterService(repos.rosters, repos.entries, repos.leagues, repos.golfers, idGen)
	entrySvc := usecase.NewEntryService(repos.entries, repos.leagues)
	leaderboardSvc := usecase.NewLeaderboardService(repos.leaderboards, repos.leagues, repos.entries, repos.tournaments, cfg.LeaderboardRefreshWorkers)
	referenceSvc := usecase.NewReferenceService(repos.tournaments, repos.golfers)

	paymentSvc := usecase.NewPaymentService(repos.entries, repos.leagues, nil)
	if cfg.PaymentsEnabled {
		paymentSvc = usecase.NewPaymentService(repos.entries, repos.leagues, newCheckoutClient(cfg, logger))
	}

	verifier := account.NewClient(account.ClientConfig{
		BaseURL:         cfg.AccountsBaseURL,
		IntrospectPath:  cfg.AccountsIntrospectPath,
		AdminKey:        cfg.AccountsAdminKey,
		Timeout:         cfg.AccountsTimeout,
		CacheTTL:        cfg.AccountsCacheTTL,
		CacheMaxEntries: cfg.AccountsCacheMaxEntries,
		Logger:          NewSlogLogger(cfg.LogLevel),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountsCircuitEnabled,
			FailureThreshold: cfg.AccountsCircuitFailureCount,
			OpenTimeout:      cfg.AccountsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountsCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		leagueSvc,
		rosterSvc,
		entrySvc,
		paymentSvc,
		leaderboardSvc,
		referenceSvc,
		cfg.PaymentWebhookSecret,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeRepos()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeRepos, nil
}

// buildRepositories picks the backing store. Without DB_URL the service runs
// fully in memory on seed data, which is how local development and the API
// tests run it.
func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("DB_URL not set, using in-memory repositories")

		entryRepo := memory.NewEntryRepository()
		leaderboardRepo := memory.NewLeaderboardRepository()
		repos := repositories{
			leagues:      memory.NewLeagueRepository(entryRepo, leaderboardRepo),
			entries:      entryRepo,
			rosters:      memory.NewRosterRepository(),
			tournaments:  memory.NewTournamentRepository(memory.SeedTournaments()),
			golfers:      memory.NewGolferRepository(memory.SeedGolfers(), memory.SeedMastersOdds()),
			leaderboards: leaderboardRepo,
		}

		return withCache(cfg, repos), func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed data: %w", err)
	}

	logger.Info("database connected", "db", dbNameFromURL(cfg.DBURL))

	repos := repositories{
		leagues:      postgres.NewLeagueRepository(db),
		entries:      postgres.NewEntryRepository(db),
		rosters:      postgres.NewRosterRepository(db),
		tournaments:  postgres.NewTournamentRepository(db),
		golfers:      postgres.NewGolferRepository(db),
		leaderboards: postgres.NewLeaderboardRepository(db),
	}

	return withCache(cfg, repos), db.Close, nil
}

// withCache layers short-TTL caching over the read-mostly reference data.
// Cache keys are namespaced per repository so one store serves both.
func withCache(cfg config.Config, repos repositories) repositories {
	if !cfg.CacheEnabled {
		return repos
	}

	store := basecache.NewStore(cfg.CacheTTL)
	repos.tournaments = cacherepo.NewTournamentRepository(repos.tournaments, store)
	repos.golfers = cacherepo.NewGolferRepository(repos.golfers, store)

	return repos
}

func newCheckoutClient(cfg config.Config, logger *logging.Logger) *paymentgw.Client {
	return paymentgw.NewClient(paymentgw.ClientConfig{
		BaseURL:       cfg.PaymentsBaseURL,
		APIKey:        cfg.PaymentsAPIKey,
		ReturnBaseURL: cfg.PaymentsReturnBaseURL,
		Currency:      cfg.PaymentsCurrency,
		Timeout:       cfg.PaymentsTimeout,
		MaxRetries:    cfg.PaymentsMaxRetries,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PaymentsCircuitEnabled,
			FailureThreshold: cfg.PaymentsCircuitFailureCount,
			OpenTimeout:      cfg.PaymentsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PaymentsCircuitHalfOpenMaxReq,
		},
	})
}

// NewSlogLogger builds the slog logger the profiling and account-client code
// paths expect.
func NewSlogLogger(level logging.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
}

func slogLevel(level logging.Level) slog.Level {
	switch level {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
