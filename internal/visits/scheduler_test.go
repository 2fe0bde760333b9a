package visits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	now := time.Now()
	store := newTestStore(t, &now)

	_, err := NewScheduler(store, "not a cron spec", time.Hour)
	assert.Error(t, err)
}

func TestSchedulerPurgeNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newTestStore(t, &now)
	require.NoError(t, store.Record(ctx, "10.0.0.1", "ua", "/"))

	now = now.Add(48 * time.Hour)
	s, err := NewScheduler(store, "0 0 3 * * *", 24*time.Hour)
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	s.PurgeNow()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalVisitors)
}
