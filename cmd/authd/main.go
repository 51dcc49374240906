// Command authd runs the credential-issuance and session-verification
// service. Startup composes the store backends once, based on configuration,
// and is the only place allowed to abort the process.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hexvault/authd/internal/auth"
	"github.com/hexvault/authd/internal/config"
	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/email"
	"github.com/hexvault/authd/internal/httpapi"
	"github.com/hexvault/authd/internal/password"
	"github.com/hexvault/authd/internal/stores"
	"github.com/hexvault/authd/internal/token"
	"github.com/hexvault/authd/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hasher, err := password.NewHasher(password.DefaultConfig())
	if err != nil {
		return err
	}
	tokens, err := token.NewService(token.Config{Secret: []byte(cfg.JWTSecret)})
	if err != nil {
		return err
	}

	users, cleanupPG, err := newUserStore(ctx, cfg, hasher, log)
	if err != nil {
		return err
	}
	defer cleanupPG()

	banned, twoFA, cleanupRedis, err := newVolatileStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanupRedis()

	svc := auth.NewService(users, banned, twoFA, tokens, email.NewLogClient(log), log)

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.NewHandler(svc, log))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newUserStore selects Postgres when a database URL is configured, otherwise
// the in-memory backend.
func newUserStore(ctx context.Context, cfg config.Config, hasher *password.Hasher, log *zap.Logger) (domain.UserStore, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("no database configured; using in-memory user store")
		return stores.NewMemoryUserStore(hasher), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	for _, stmt := range migrations.Statements() {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	log.Info("using postgres user store")
	return stores.NewPostgresUserStore(pool, hasher), pool.Close, nil
}

// newVolatileStores selects Redis for the ban-list and challenge stores when
// an address is configured, otherwise the in-memory backends.
func newVolatileStores(ctx context.Context, cfg config.Config, log *zap.Logger) (domain.BannedTokenStore, domain.TwoFACodeStore, func(), error) {
	if cfg.RedisAddr == "" {
		log.Warn("no redis configured; using in-memory token and challenge stores")
		return stores.NewMemoryBannedTokenStore(), stores.NewMemoryTwoFACodeStore(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, nil, err
	}

	log.Info("using redis token and challenge stores", zap.String("addr", cfg.RedisAddr))
	cleanup := func() { _ = rdb.Close() }
	return stores.NewRedisBannedTokenStore(rdb), stores.NewRedisTwoFACodeStore(rdb), cleanup, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
