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

func TestSheetsUpdateRoundTrip(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewSheets(store)
	ctx := context.Background()

	err := svc.Update(ctx, models.SheetGo, "Kitchen open till 23:00", 42)
	require.NoError(t, err)

	sheet, err := svc.Get(ctx, models.SheetGo)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen open till 23:00", sheet.Content)
	assert.Equal(t, int64(42), sheet.UpdatedBy)

	err = svc.Update(ctx, models.SheetGo, "Kitchen open till 22:00", 43)
	require.NoError(t, err)

	sheet, err = svc.Get(ctx, models.SheetGo)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen open till 22:00", sheet.Content)
	assert.Equal(t, int64(43), sheet.UpdatedBy)
}

func TestSheetsIndependentTypes(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewSheets(store)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, models.SheetGo, "go text", 1))
	require.NoError(t, svc.Update(ctx, models.SheetStart, "start text", 1))

	goSheet, err := svc.Get(ctx, models.SheetGo)
	require.NoError(t, err)
	startSheet, err := svc.Get(ctx, models.SheetStart)
	require.NoError(t, err)
	assert.Equal(t, "go text", goSheet.Content)
	assert.Equal(t, "start text", startSheet.Content)
}

func TestSheetsRejectBlankContent(t *testing.T) {
	svc := NewSheets(stubs.NewMemoryStore())

	err := svc.Update(context.Background(), models.SheetStart, "  \n\t", 1)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFilesSaveAndGet(t *testing.T) {
	store := stubs.NewMemoryStore()
	svc := NewFiles(store)
	ctx := context.Background()

	_, err := svc.Get(ctx, models.FileSchedule)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	asset := models.FileAsset{
		FileType:  models.FileSchedule,
		FileID:    "AgACAgIAAxkBAAIB",
		FileName:  "schedule.jpg",
		UpdatedBy: 42,
	}
	require.NoError(t, svc.Save(ctx, asset))

	saved, err := svc.Get(ctx, models.FileSchedule)
	require.NoError(t, err)
	assert.Equal(t, "AgACAgIAAxkBAAIB", saved.FileID)

	asset.FileID = "AgACAgIAAxkBAAIC"
	require.NoError(t, svc.Save(ctx, asset))

	saved, err = svc.Get(ctx, models.FileSchedule)
	require.NoError(t, err)
	assert.Equal(t, "AgACAgIAAxkBAAIC", saved.FileID, "save must replace the stored file id")
}

func TestFilesSaveRejectsEmptyFileID(t *testing.T) {
	svc := NewFiles(stubs.NewMemoryStore())

	err := svc.Save(context.Background(), models.FileAsset{FileType: models.FileSeating})
	assert.ErrorIs(t, err, ErrEmptyFileID)
}
