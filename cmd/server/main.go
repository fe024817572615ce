package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/api"
	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/service"
	"github.com/hop4deals/deals-api/internal/core/token"
	"github.com/hop4deals/deals-api/internal/infrastructure/audit"
	mongodb "github.com/hop4deals/deals-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hop4deals/deals-api/internal/infrastructure/db/redis"
	"github.com/hop4deals/deals-api/internal/pkg/config"
	"github.com/hop4deals/deals-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; in deployed environments the variables
	// come from the orchestrator and no .env file exists.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := token.NewManager(token.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("token manager init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Indexes and bootstrap admin ---
	accountRepo := mongodb.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := mongodb.NewDealRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("deal indexes failed")
	}
	if err := seedAdmin(ctx, accountRepo, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	// --- Async auth-event recorder ---
	eventStore := mongodb.NewAuthEventRepository(db)
	events := audit.NewDispatcher(cfg.AuditWorkers, eventStore, log)
	events.Start(ctx)

	e := api.NewRouter(db, rdb, tokens, events, eventStore, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin creates the bootstrap administrator when no admin account exists
// yet, so a fresh deployment can be logged into and further accounts created
// through the API.
func seedAdmin(ctx context.Context, repo *mongodb.AccountRepository, cfg config.AdminConfig, log zerolog.Logger) error {
	n, err := repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := service.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.Account{
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Privileges:   domain.Privileges{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrAccountExists) {
		// Another instance won the race.
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.Email).Msg("bootstrap admin created")
	return nil
}
