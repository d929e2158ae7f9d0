package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "restobot/internal/config"
	"restobot/internal/models"
	"restobot/internal/service"
	"restobot/internal/storage/stubs"
)

func seedFeedback(t *testing.T, store *stubs.MemoryStore, age time.Duration) {
	t.Helper()
	_, err := store.CreateFeedback(context.Background(), models.Feedback{
		UserID:      1,
		Message:     "msg",
		TableNumber: 1,
		Category:    models.CategoryFeedback,
		Status:      models.StatusNew,
		CreatedAt:   time.Now().Add(-age),
	})
	require.NoError(t, err)
}

func TestSweepOnceDeletesOnlyExpired(t *testing.T) {
	store := stubs.NewMemoryStore()
	seedFeedback(t, store, 31*24*time.Hour)
	seedFeedback(t, store, 45*24*time.Hour)
	seedFeedback(t, store, time.Hour)

	s := New(service.NewFeedback(store), coreconfig.RetentionConfig{MaxAgeDays: 30})

	deleted, err := s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted, "second pass with no new data must delete nothing")
}

func TestRunStopsOnCancel(t *testing.T) {
	store := stubs.NewMemoryStore()
	s := New(service.NewFeedback(store), coreconfig.RetentionConfig{
		MaxAgeDays:       1,
		SweepIntervalMin: 60,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}

func TestRetentionDefaults(t *testing.T) {
	s := New(service.NewFeedback(stubs.NewMemoryStore()), coreconfig.RetentionConfig{})
	assert.Equal(t, 24*time.Hour, s.interval)
	assert.Equal(t, 30*24*time.Hour, s.maxAge)
	assert.Equal(t, time.Hour, s.backoff)
}
