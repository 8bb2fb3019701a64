package persistence

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	kv, err := NewFileKV(fs, "/data")
	require.NoError(t, err)

	_, err = kv.Get(ctx, "portfolios")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "portfolios", []byte(`[1]`)))
	require.NoError(t, kv.Set(ctx, "portfolios", []byte(`[1,2]`)))

	got, err := kv.Get(ctx, "portfolios")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	exists, err := afero.Exists(fs, "/data/portfolios.json")
	require.NoError(t, err)
	assert.True(t, exists)

	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, kv.Delete(ctx, "portfolios"))
	require.NoError(t, kv.Delete(ctx, "portfolios"))
	_, err = kv.Get(ctx, "portfolios")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKV_RejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../etc/passwd", `a\b`} {
		assert.Error(t, kv.Set(context.Background(), key, []byte("x")), key)
	}
}

func TestFileKV_EmptyDir(t *testing.T) {
	_, err := NewFileKV(afero.NewMemMapFs(), "")
	assert.Error(t, err)
}
