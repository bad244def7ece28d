package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/digicard/admin-auth/internal/application/login"
	"github.com/digicard/admin-auth/internal/config"
	"github.com/digicard/admin-auth/internal/infrastructure/db/postgres"
	"github.com/digicard/admin-auth/internal/infrastructure/memory"
	"github.com/digicard/admin-auth/internal/infrastructure/redis"
	"github.com/digicard/admin-auth/internal/infrastructure/security"
	"github.com/digicard/admin-auth/internal/logger"
	http_handlers "github.com/digicard/admin-auth/internal/transport/http/handlers"
	"github.com/digicard/admin-auth/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	// 2) account repo
	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	accountRepo := postgres.NewAccountRepo(sqlDB)

	// 3) redis (best-effort)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; session revocation disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) session revoker
	var revoker login.SessionRevoker = memory.NewSessionRevoker()
	if rc, ok := redisCli.(*redis.Client); ok {
		revoker = redis.NewSessionRevoker(rc)
	} else if redisCli != nil {
		// Injected client of another type: keep the in-memory revoker
		// rather than panicking on a bad assertion.
		logger.Logger.Warn().Msg("redis client type not usable for session revocation; using in-memory store")
	}

	// 5) security
	hasher := security.NewBcryptHasher(12)

	// seed (dev only)
	if cfg.SeedDemoData {
		postgres.SeedAccounts(context.Background(), accountRepo, hasher)
	}

	// 6) service
	loginSvc := login.NewService(accountRepo, hasher, revoker)

	// 7) handlers
	authH := http_handlers.NewAuthHandler(loginSvc, cfg.SecureCookies)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Auth:   authH,
		Health: healthH,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
