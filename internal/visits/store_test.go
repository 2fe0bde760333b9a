package visits

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, now *time.Time) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "visits.db"), "test-salt")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	store.now = func() time.Time { return *now }
	return store
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	now := time.Now()
	store := newTestStore(t, &now)

	a := store.HashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, store.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, store.HashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestRandomSaltWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(context.Background(), filepath.Join(dir, "a.db"), "")
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(context.Background(), filepath.Join(dir, "b.db"), "")
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.HashIP("198.51.100.1"), b.HashIP("198.51.100.1"))
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, &now)

	require.NoError(t, store.Record(ctx, "10.0.0.1", "ua", "/"))
	require.NoError(t, store.Record(ctx, "10.0.0.1", "ua", "/projects/x/preview"))

	now = now.Add(-3 * 24 * time.Hour)
	require.NoError(t, store.Record(ctx, "10.0.0.2", "ua", "/"))

	now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).Add(-30 * 24 * time.Hour)
	require.NoError(t, store.Record(ctx, "10.0.0.3", "ua", "/"))

	now = time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	stats, err := store.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
}

func TestPurgeRemovesOldVisits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newTestStore(t, &now)

	require.NoError(t, store.Record(ctx, "10.0.0.1", "ua", "/old"))
	now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, "10.0.0.2", "ua", "/new"))

	deleted, err := store.Purge(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)

	deleted, err = store.Purge(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
