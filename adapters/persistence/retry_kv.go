package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type RetryPolicy struct {
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxElapsed > 0 {
		b.MaxElapsedTime = p.MaxElapsed
	}
	return backoff.WithContext(b, ctx)
}

// retryingKV retries transient backend failures with exponential backoff.
// ErrKeyNotFound is final and returned on the first attempt.
type retryingKV struct {
	next       KeyValue
	logger     logger.Logger
	newBackOff func(ctx context.Context) backoff.BackOff
}

func NewRetryingKV(next KeyValue, policy RetryPolicy, log logger.Logger) KeyValue {
	return &retryingKV{next: next, logger: log, newBackOff: policy.backOff}
}

func (r *retryingKV) Get(ctx context.Context, key string) ([]byte, error) {
	var out []byte
	err := r.retry(ctx, "get", key, func() error {
		v, err := r.next.Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrKeyNotFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (r *retryingKV) Set(ctx context.Context, key string, value []byte) error {
	return r.retry(ctx, "set", key, func() error {
		return r.next.Set(ctx, key, value)
	})
}

func (r *retryingKV) Delete(ctx context.Context, key string) error {
	return r.retry(ctx, "delete", key, func() error {
		return r.next.Delete(ctx, key)
	})
}

func (r *retryingKV) Close() error {
	return r.next.Close()
}

func (r *retryingKV) retry(ctx context.Context, op, key string, fn func() error) error {
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err != nil && !errors.Is(err, ErrKeyNotFound) {
			r.logger.Warn("Storage operation failed",
				zap.String("op", op),
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}, r.newBackOff(ctx))
}
