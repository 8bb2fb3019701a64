package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/application/seed"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

func newFileSnapshotRepo(t *testing.T) (portfolio.Repository, KeyValue) {
	t.Helper()
	kv, err := NewFileKV(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	return NewSnapshotRepo(kv, "portfolios", logger.NewNopLogger()), kv
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newFileSnapshotRepo(t)

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, portfolio.ErrSnapshotNotFound)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	list := seed.DefaultSeeder().Seed(now)
	require.NoError(t, repo.Save(ctx, list))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestSnapshotRepo_EmptyListIsStoredAsArray(t *testing.T) {
	ctx := context.Background()
	repo, kv := newFileSnapshotRepo(t)

	require.NoError(t, repo.Save(ctx, nil))

	raw, err := kv.Get(ctx, "portfolios")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshotRepo_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, kv := newFileSnapshotRepo(t)

	require.NoError(t, kv.Set(ctx, "portfolios", []byte(`{"not":"a list"`)))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, portfolio.ErrCorruptSnapshot)
}

func TestSnapshotRepo_UsesCamelCaseFields(t *testing.T) {
	ctx := context.Background()
	repo, kv := newFileSnapshotRepo(t)

	p := portfolio.Portfolio{
		ID:        "p1",
		Template:  portfolio.TemplateModern,
		Hero:      portfolio.Hero{Name: "Ada", CtaText: "Hire me"},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	p.Normalize()
	require.NoError(t, repo.Save(ctx, []portfolio.Portfolio{p}))

	raw, err := kv.Get(ctx, "portfolios")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"ctaText":"Hire me"`)
	assert.Contains(t, string(raw), `"createdAt":"2024-01-01T00:00:00Z"`)
}
