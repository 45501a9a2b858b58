// Package redisstore keeps short-lived auth state in Redis.
package redisstore

import (
	"context"
	"crypto/tls"

	"recruit/config"
	"recruit/internal/domain/lifecycle"
	"recruit/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewClient builds a Redis client from cfg and closes it when the app stops.
// The connection is checked on start.
func NewClient(lc fx.Lifecycle, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is not configured")
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
