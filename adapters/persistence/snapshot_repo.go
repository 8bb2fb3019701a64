package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var tracer = otel.Tracer("persistence")

// snapshotRepo keeps the whole portfolio list as one JSON array under a
// single key.
type snapshotRepo struct {
	kv     KeyValue
	key    string
	logger logger.Logger
}

func NewSnapshotRepo(kv KeyValue, key string, log logger.Logger) portfolio.Repository {
	return &snapshotRepo{kv: kv, key: key, logger: log}
}

func (r *snapshotRepo) Load(ctx context.Context) ([]portfolio.Portfolio, error) {
	ctx, span := tracer.Start(ctx, "SnapshotRepo.Load")
	defer span.End()
	span.SetAttributes(attribute.String("storage.key", r.key))

	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, portfolio.ErrSnapshotNotFound
		}
		span.RecordError(err)
		return nil, err
	}

	var list []portfolio.Portfolio
	if err := json.Unmarshal(data, &list); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %v", portfolio.ErrCorruptSnapshot, err)
	}
	if list == nil {
		list = []portfolio.Portfolio{}
	}
	span.SetAttributes(attribute.Int("portfolio.count", len(list)))
	r.logger.Debug("Snapshot loaded", zap.String("key", r.key), zap.Int("bytes", len(data)))
	return list, nil
}

func (r *snapshotRepo) Save(ctx context.Context, list []portfolio.Portfolio) error {
	ctx, span := tracer.Start(ctx, "SnapshotRepo.Save")
	defer span.End()
	span.SetAttributes(attribute.String("storage.key", r.key), attribute.Int("portfolio.count", len(list)))

	if list == nil {
		list = []portfolio.Portfolio{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("encode portfolios: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
