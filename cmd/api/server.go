package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bancaplus/backoffice/internal/api"
	"github.com/bancaplus/backoffice/internal/api/handler"
	"github.com/bancaplus/backoffice/internal/api/metrics"
	"github.com/bancaplus/backoffice/internal/api/middleware"
	"github.com/bancaplus/backoffice/internal/core/service"
	"github.com/bancaplus/backoffice/internal/i18n"
	"github.com/bancaplus/backoffice/internal/infrastructure/auth"
	"github.com/bancaplus/backoffice/internal/infrastructure/config"
	redisdb "github.com/bancaplus/backoffice/internal/infrastructure/db/redis"
	"github.com/bancaplus/backoffice/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func runServer(ctx context.Context) error {
	// 1. Configuration and logging.
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})
	log := logger.Component("server")

	// 2. Backing services, created once and injected.
	store, err := openDatastore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close datastore")
		}
	}()

	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// 3. Authorization pipeline.
	verifier := auth.NewJWTVerifier(auth.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}, redisdb.NewRevocationStore(rdb, 0))

	authorizer := service.NewAuthorizationService(
		metrics.InstrumentVerifier(verifier),
		service.NewAccountResolver(store.accounts),
		service.NewPermissionResolver(store.grants),
		cfg.RequestTimeout,
		logger.Component("authorization"),
	)

	bundle, err := i18n.New(middleware.NewValidator(), cfg.DefaultLocale)
	if err != nil {
		return err
	}

	// 4. HTTP server.
	e := api.NewRouter(api.Dependencies{
		Authorizer:   authorizer,
		Banks:        store.banks,
		ErrorRecords: store.records,
		Bundle:       bundle,
		Health: []handler.Dependency{
			{Name: store.name, Ping: store.ping},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
		Log:       logger.Component("http"),
		BodyLimit: cfg.BodyLimit,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("datastore", store.name).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	return redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.RequestTimeout,
	})
}
