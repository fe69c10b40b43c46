package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexa-agro/auth-api/internal/api"
	"github.com/nexa-agro/auth-api/internal/core/token"
	"github.com/nexa-agro/auth-api/internal/infrastructure/config"
	"github.com/nexa-agro/auth-api/internal/infrastructure/db/postgres"
	redisdb "github.com/nexa-agro/auth-api/internal/infrastructure/db/redis"
	"github.com/nexa-agro/auth-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(cfg.Postgres.URI); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{URI: cfg.Postgres.URI})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(api.RouterDeps{
		Directory: postgres.NewUserDirectory(pool),
		Codec:     token.NewCodec(cfg.JWTSecret, cfg.TokenTTL),
		Limiter:   redisdb.NewLoginLimiter(rdb, cfg.RateLimit.Attempts, cfg.RateLimit.Window),
		DB:        pool,
		Redis:     rdb,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("auth api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
