package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sesamelabs/identity-service/internal/api"
	"github.com/sesamelabs/identity-service/internal/core/service"
	"github.com/sesamelabs/identity-service/internal/infrastructure/config"
	mongodb "github.com/sesamelabs/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/sesamelabs/identity-service/internal/infrastructure/db/redis"
	"github.com/sesamelabs/identity-service/internal/infrastructure/queue"
	"github.com/sesamelabs/identity-service/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Incomplete configuration (e.g. no JWT_SECRET) must never serve.
		fatal := logger.Init(logger.Options{Level: "error"})
		fatal.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}
	auditRepo := mongodb.NewAuditRepository(db)
	cache := redisdb.NewProfileCache(rdb)

	// --- Audit pipeline ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenAuthority([]byte(cfg.JWTSecret), cfg.TokenTTL)
	policy := service.NewAccessPolicy()
	authService := service.NewAuthService(userRepo, hasher, tokens, dispatcher, log)
	userService := service.NewUserService(userRepo, hasher, policy, cache, dispatcher, log)

	e := api.NewRouter(authService, userService, tokens, policy, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
