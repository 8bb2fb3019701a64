package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValue is the durable key-value mirror: one opaque value per key,
// overwritten on every Set.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewKeyValue opens the backend named by storage.driver and wraps it with
// retries for transient failures.
func NewKeyValue(ctx context.Context, cfg config.Config, log logger.Logger) (KeyValue, error) {
	var (
		kv  KeyValue
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverFile:
		kv, err = NewFileKV(afero.NewOsFs(), cfg.Storage.Dir)
	case config.DriverRedis:
		client, rerr := NewRedisClient(ctx, cfg, log)
		if rerr != nil {
			return nil, rerr
		}
		kv = NewRedisKV(client)
	case config.DriverPostgres:
		pool, perr := NewPostgresPool(ctx, cfg, log)
		if perr != nil {
			return nil, perr
		}
		kv = NewPostgresKV(pool)
	case config.DriverSQLite:
		kv, err = NewSQLiteKV(ctx, cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	return NewRetryingKV(kv, RetryPolicy{
		InitialInterval: cfg.Retry.InitialInterval,
		MaxElapsed:      cfg.Retry.MaxElapsed,
	}, log), nil
}
