package storage

import (
	"context"
	"errors"
	"eventPlanner/internal/config"
	"eventPlanner/internal/storage/file"
	"eventPlanner/internal/storage/memory"
	"eventPlanner/internal/storage/postgres"
	"eventPlanner/internal/storage/redis"
	"eventPlanner/internal/storage/sqlite"
	"fmt"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Backend is a string key-value store. Get reports ok=false for a key that
// was never set.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend named by cfg.Driver. The file backend names its
// files after the configured codec.
func Open(ctx context.Context, cfg *config.Storage) (Backend, error) {
	const op = "storage.Open"

	var (
		b   Backend
		err error
	)

	switch cfg.Driver {
	case DriverMemory:
		b = memory.New()
	case DriverFile:
		b, err = file.New(cfg.Dir, "."+codecName(cfg.Codec))
	case DriverSQLite:
		b, err = sqlite.New(ctx, cfg.SQLitePath)
	case DriverPostgres:
		b, err = postgres.InitDB(ctx, &cfg.Database)
	case DriverRedis:
		b, err = redis.New(ctx, &cfg.Redis)
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownDriver, cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func codecName(name string) string {
	if name == "" {
		return "json"
	}

	return name
}
