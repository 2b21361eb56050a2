package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/timeledger/project-billing-api/config"
	"github.com/timeledger/project-billing-api/internal/projects/events"
)

// OpenPublisher returns a Redis publisher when cfg.Addr is set and a no-op
// publisher otherwise. The returned close func is never nil.
func OpenPublisher(ctx context.Context, cfg *config.RedisConfig) (events.Publisher, func() error, error) {
	if cfg.Addr == "" {
		return events.NopPublisher{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return events.NewRedisPublisher(client, cfg.Channel), client.Close, nil
}
