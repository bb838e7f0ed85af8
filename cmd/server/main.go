package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/liquidglass/storefront-api/internal/api"
	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/infrastructure/config"
	redisdb "github.com/liquidglass/storefront-api/internal/infrastructure/db/redis"
	"github.com/liquidglass/storefront-api/internal/infrastructure/store/jsonfile"
	"github.com/liquidglass/storefront-api/pkg/logger"
)

// Seed identity for a fresh store: password is "adminpassword".
const (
	seedAdminID    = "user-1"
	seedAdminEmail = "admin@liquid-glass.com"
	seedAdminHash  = "$2a$10$eACCc55nCenx2AxVP2g29uJc2x1tJgFbU3wzau7u2S.I4A7a4Ua6."
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// Without a signing secret every token operation would fail anyway;
	// refuse to start instead of serving a broken auth subsystem.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	store := jsonfile.New(cfg.StorePath, log)
	if err := seedAdmin(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: cfg.Redis.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
	}

	e := api.NewRouter(store, rdb, api.Options{
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.IsProduction(),
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedAdmin inserts the default back-office account when the store has no
// users yet. Existing stores are left untouched.
func seedAdmin(ctx context.Context, store *jsonfile.Store) error {
	return store.Update(ctx, func(snap *domain.Snapshot) error {
		if len(snap.Users) > 0 {
			return nil
		}
		snap.Users = append(snap.Users, domain.User{
			ID:           seedAdminID,
			Email:        seedAdminEmail,
			PasswordHash: seedAdminHash,
			Roles:        []domain.Role{domain.RoleAdmin, domain.RoleUser},
		})
		return nil
	})
}
