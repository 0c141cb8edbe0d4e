// Package redis stores planner keys as plain Redis strings.
package redis

import (
	"context"
	"errors"
	"eventPlanner/internal/config"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

type Storage struct {
	client *redis.Client
	prefix string
}

func Addr(cfg *config.Redis) string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// New connects to Redis, retrying the initial ping cfg.MaxRetries times.
func New(ctx context.Context, cfg *config.Redis) (*Storage, error) {
	const op = "storage.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:        Addr(cfg),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				client.Close()
				return nil, fmt.Errorf("%s: %w", op, ctx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return &Storage{client: client, prefix: cfg.Prefix}, nil
		}
	}

	client.Close()

	return nil, fmt.Errorf("%s: failed to connect to redis after %d attempts: %w", op, cfg.MaxRetries+1, lastErr)
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "storage.redis.Get"

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "storage.redis.Set"

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	const op = "storage.redis.Delete"

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
