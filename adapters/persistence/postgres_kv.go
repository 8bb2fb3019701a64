package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresKV keeps one JSONB row per key in kv_store (see migrations/).
type postgresKV struct {
	db *pgxpool.Pool
}

func NewPostgresKV(db *pgxpool.Pool) KeyValue {
	return &postgresKV{db: db}
}

var psqlKV = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	sql, args, err := psqlKV.Select("value").From("kv_store").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kv get query: %w", err)
	}

	var value []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("query kv %q: %w", key, err)
	}
	return value, nil
}

func (r *postgresKV) Set(ctx context.Context, key string, value []byte) error {
	sql, args, err := psqlKV.Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}

func (r *postgresKV) Delete(ctx context.Context, key string) error {
	sql, args, err := psqlKV.Delete("kv_store").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build kv delete query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete kv %q: %w", key, err)
	}
	return nil
}

func (r *postgresKV) Close() error {
	r.db.Close()
	return nil
}
