package main

import (
	"context"
	"errors"
	"time"

	"github.com/bancaplus/backoffice/internal/infrastructure/config"
	redisdb "github.com/bancaplus/backoffice/internal/infrastructure/db/redis"
	"github.com/bancaplus/backoffice/pkg/logger"
)

// runRevoke marks every credential issued to subject before now as revoked.
func runRevoke(ctx context.Context, subject string) error {
	if subject == "" {
		return errors.New("revoke: subject must not be empty")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})
	log := logger.Component("revoke")

	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	at := time.Now().UTC()
	if err := redisdb.NewRevocationStore(rdb, 0).Revoke(ctx, subject, at); err != nil {
		return err
	}

	log.Info().Str("subject", subject).Time("revoked_at", at).Msg("credentials revoked")
	return nil
}
