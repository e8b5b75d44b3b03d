package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis instantiates the redis client used to cache queue-info
// snapshots. Returns nil when no address is configured or the server is
// unreachable; callers degrade to the database path.
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis unreachable at %s, queue-info cache disabled: %v", cfg.Redis.Addr, err)
		return nil
	}

	log.Printf("Redis connected [%s]", cfg.Redis.Addr)
	return client
}
