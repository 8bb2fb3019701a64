package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// Runs against a real Redis when REDIS_ADDR is set.
func TestRedisKVIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if testing.Short() || addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()

	var cfg config.Config
	cfg.Redis.Addr = addr
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	client, err := NewRedisClient(ctx, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	kv := NewRedisKV(client)
	defer kv.Close()

	key := "portfolio-builder-test"
	t.Cleanup(func() { client.Del(context.Background(), key) })

	_, err = kv.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, key, []byte(`[]`)))
	got, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, kv.Delete(ctx, key))
	_, err = kv.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
