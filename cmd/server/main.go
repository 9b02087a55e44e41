package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/onboarding/migrations"
	"github.com/dmitrymomot/onboarding/modules/account"
	authstore "github.com/dmitrymomot/onboarding/pkg/auth"
	"github.com/dmitrymomot/onboarding/pkg/clientip"
	"github.com/dmitrymomot/onboarding/pkg/config"
	"github.com/dmitrymomot/onboarding/pkg/cookie"
	"github.com/dmitrymomot/onboarding/pkg/environment"
	"github.com/dmitrymomot/onboarding/pkg/httpserver"
	"github.com/dmitrymomot/onboarding/pkg/jwt"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/metrics"
	"github.com/dmitrymomot/onboarding/pkg/password"
	"github.com/dmitrymomot/onboarding/pkg/pg"
	"github.com/dmitrymomot/onboarding/pkg/ratelimiter"
	"github.com/dmitrymomot/onboarding/pkg/redis"
	"github.com/dmitrymomot/onboarding/pkg/requestid"
	"github.com/dmitrymomot/onboarding/pkg/session"
	svcauth "github.com/dmitrymomot/onboarding/svc/auth"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfigs()
	if err != nil {
		return err
	}

	env := environment.Parse(cfg.App.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.App.Name),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	var checks []httpserver.Check

	storage, closeStorage, err := openStorage(ctx, cfg.App.Storage, log, &checks)
	if err != nil {
		return err
	}
	defer closeStorage()

	limiterStore, closeLimiter, err := openLimiterStore(ctx, cfg.Redis, log, &checks)
	if err != nil {
		return err
	}
	defer closeLimiter()

	bucket, err := ratelimiter.NewBucket(limiterStore, cfg.RateLimiter)
	if err != nil {
		return err
	}

	hasher, err := password.New(cfg.Password)
	if err != nil {
		return err
	}
	tokens, err := jwt.NewFromConfig(cfg.JWT)
	if err != nil {
		return err
	}

	cookies := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(cfg.Cookie.Secure || env.IsProduction()))
	m := metrics.New()

	authService, err := svcauth.NewService(
		authstore.NewStore(storage, hasher, authstore.WithLogger(log)),
		tokens,
		session.NewCookieManager(cookies, cfg.Session),
		svcauth.Config{AccessTokenTTL: cfg.JWT.AccessTokenTTL, RefreshTokenTTL: cfg.JWT.RefreshTokenTTL},
		svcauth.WithLogger(log),
		svcauth.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	ips, err := clientip.New(cfg.ClientIP)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		ips.Middleware,
		environment.Middleware(env),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Mount("/api", account.Router(account.RouterOptions{
		Password: account.NewPasswordHandler(authService,
			account.WithRateLimiter(bucket),
			account.WithMetrics(m),
			account.WithLogger(log),
		),
	}))

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

// openStorage returns the user storage selected by AUTH_STORAGE. Postgres is
// migrated on startup and registered as a readiness check.
func openStorage(ctx context.Context, kind string, log *slog.Logger, checks *[]httpserver.Check) (authstore.Storage, func(), error) {
	if kind == storageMemory {
		log.WarnContext(ctx, "using in-memory user storage, accounts are lost on restart")
		return authstore.NewMemoryStorage(), func() {}, nil
	}

	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return nil, nil, err
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.Migrate(ctx, pool, pgCfg, migrations.FS, log); err != nil {
		pool.Close()
		return nil, nil, err
	}

	*checks = append(*checks, httpserver.Check{Name: "postgres", Probe: pg.Healthcheck(pool)})
	return authstore.NewPostgresStorage(pool), pool.Close, nil
}

// openLimiterStore uses redis when REDIS_URL is set so limits hold across
// instances, and an in-process store otherwise.
func openLimiterStore(ctx context.Context, cfg redis.Config, log *slog.Logger, checks *[]httpserver.Check) (ratelimiter.Store, func(), error) {
	if !cfg.Enabled() {
		store := ratelimiter.NewMemoryStore()
		return store, store.Close, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	*checks = append(*checks, httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)})
	return ratelimiter.NewRedisStore(client), closeRedis(ctx, client, log), nil
}

func closeRedis(ctx context.Context, client *goredis.Client, log *slog.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close redis client", logger.Error(err))
		}
	}
}
