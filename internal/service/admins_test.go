package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restobot/internal/models"
	"restobot/internal/storage"
	"restobot/internal/storage/stubs"
)

func TestAdminsAddAndCheck(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewAdmins(store)
	ctx := context.Background()

	ok, err := svc.IsAdmin(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Add(ctx, models.Admin{UserID: 42, Username: "maitre"}))

	ok, err = svc.IsAdmin(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	admins, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "maitre", admins[0].Username)
}

func TestAdminsAddRejectsZeroID(t *testing.T) {
	svc := NewAdmins(stubs.NewMemoryStore())

	err := svc.Add(context.Background(), models.Admin{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestAdminsRemove(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewAdmins(store)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.Admin{UserID: 7}))
	require.NoError(t, svc.Remove(ctx, 7))

	ok, err := svc.IsAdmin(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	err = svc.Remove(ctx, 7)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestAdminsCheckFailureSurfaces(t *testing.T) {
	store := stubs.NewMemoryStore()
	store.FailReads = errors.New("timeout")
	svc := NewAdmins(store)

	_, err := svc.IsAdmin(context.Background(), 42)
	assert.Error(t, err)
}
