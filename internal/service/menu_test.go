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

func seededMenu(t *testing.T) (*Menu, *stubs.MemoryStore) {
	t.Helper()
	store := stubs.NewMemoryStore()
	store.SeedMenu(
		[]models.Category{
			{ID: 2, Name: "Desserts", SortOrder: 2},
			{ID: 1, Name: "Soups", SortOrder: 1},
		},
		[]models.Dish{
			{ID: 10, CategoryID: 1, Name: "Borscht", Price: 450, IsAvailable: true, SortOrder: 2},
			{ID: 11, CategoryID: 1, Name: "Mushroom cream", Price: 520, IsAvailable: true, SortOrder: 1},
			{ID: 12, CategoryID: 1, Name: "Okroshka", Price: 390, IsAvailable: false, SortOrder: 3},
			{ID: 20, CategoryID: 2, Name: "Honey cake", Price: 380, IsAvailable: true, SortOrder: 1},
		},
	)
	return NewMenu(store), store
}

func TestMenuCategoriesOrdered(t *testing.T) {
	menu, _ := seededMenu(t)

	cats, err := menu.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Soups", cats[0].Name)
	assert.Equal(t, "Desserts", cats[1].Name)
}

func TestMenuDishesOnlyAvailableOrdered(t *testing.T) {
	menu, _ := seededMenu(t)

	dishes, err := menu.Dishes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, dishes, 2, "unavailable dishes must be filtered")
	assert.Equal(t, "Mushroom cream", dishes[0].Name)
	assert.Equal(t, "Borscht", dishes[1].Name)
	for _, d := range dishes {
		assert.Equal(t, int64(1), d.CategoryID)
		assert.True(t, d.IsAvailable)
	}
}

func TestMenuDishNotFound(t *testing.T) {
	menu, _ := seededMenu(t)

	_, err := menu.Dish(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMenuReadFailureSurfaces(t *testing.T) {
	menu, store := seededMenu(t)
	store.FailReads = errors.New("connection refused")

	_, err := menu.Categories(context.Background())
	assert.Error(t, err)

	_, err = menu.Dishes(context.Background(), 1)
	assert.Error(t, err)
}
