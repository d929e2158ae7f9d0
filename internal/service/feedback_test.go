package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restobot/internal/models"
	"restobot/internal/storage"
	"restobot/internal/storage/stubs"
)

func guestFeedback(table int) models.Feedback {
	return models.Feedback{
		UserID:      100500,
		Username:    "guest",
		FullName:    "Guest Guestov",
		Message:     "The soup was cold",
		TableNumber: table,
		Category:    models.CategoryComplaint,
	}
}

func TestFeedbackSubmitStoresNewRow(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)

	id, err := svc.Submit(context.Background(), guestFeedback(12))
	require.NoError(t, err)
	require.NotZero(t, id)

	saved, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, saved.Status, "submit must not trust caller status")
	assert.Equal(t, 12, saved.TableNumber)
	assert.Equal(t, models.CategoryComplaint, saved.Category)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestFeedbackSubmitRejectsInvalidInput(t *testing.T) {
	svc := NewFeedback(stubs.NewMemoryStore())
	ctx := context.Background()

	for _, table := range []int{0, models.MinTable - 1, models.MaxTable + 1} {
		_, err := svc.Submit(ctx, guestFeedback(table))
		assert.ErrorIs(t, err, ErrInvalidTable, "table %d", table)
	}

	bad := guestFeedback(5)
	bad.Category = "rant"
	_, err := svc.Submit(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidFeedbackCategory)

	blank := guestFeedback(5)
	blank.Message = "   \n"
	_, err = svc.Submit(ctx, blank)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestFeedbackMarkReadIdempotent(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)
	ctx := context.Background()

	id, err := svc.Submit(ctx, guestFeedback(3))
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, id))
	require.NoError(t, svc.MarkRead(ctx, id))

	saved, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRead, saved.Status)
}

func TestFeedbackMarkRepliedAndMissing(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)
	ctx := context.Background()

	id, err := svc.Submit(ctx, guestFeedback(7))
	require.NoError(t, err)

	require.NoError(t, svc.MarkReplied(ctx, id))
	saved, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReplied, saved.Status)

	err = svc.MarkReplied(ctx, id+1)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestFeedbackDeleteRemovesExactlyOne(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)
	ctx := context.Background()

	first, err := svc.Submit(ctx, guestFeedback(1))
	require.NoError(t, err)
	second, err := svc.Submit(ctx, guestFeedback(2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first))

	_, err = svc.Get(ctx, first)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = svc.Get(ctx, second)
	assert.NoError(t, err)

	err = svc.Delete(ctx, first)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestFeedbackListNewestFirst(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)
	ctx := context.Background()

	now := time.Now()
	for i, age := range []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour} {
		fb := guestFeedback(i + 1)
		fb.CreatedAt = now.Add(-age)
		_, err := svc.Submit(ctx, fb)
		require.NoError(t, err)
	}

	rows, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
	assert.Equal(t, 2, rows[0].TableNumber)
}

func TestFeedbackPurgeDeletesOnlyExpired(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFeedback(store)
	ctx := context.Background()
	now := time.Now()

	old := guestFeedback(4)
	old.CreatedAt = now.Add(-40 * 24 * time.Hour)
	oldID, err := svc.Submit(ctx, old)
	require.NoError(t, err)

	fresh := guestFeedback(5)
	fresh.CreatedAt = now.Add(-time.Hour)
	freshID, err := svc.Submit(ctx, fresh)
	require.NoError(t, err)

	deleted, err := svc.Purge(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = svc.Get(ctx, oldID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = svc.Get(ctx, freshID)
	assert.NoError(t, err)

	deleted, err = svc.Purge(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, deleted, "repeated sweep must find nothing")
}

func TestFeedbackSubmitWriteFailure(t *testing.T) {
	store := stubs.NewMemoryStore()
	store.FailWrites = errors.New("deadlock detected")
	svc := NewFeedback(store)

	_, err := svc.Submit(context.Background(), guestFeedback(9))
	assert.Error(t, err)
}
