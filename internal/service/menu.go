// Package service implements the business rules of the restaurant bot
// on top of the storage contract. Handlers talk to services, never to
// the store directly.
package service

import (
	"context"
	"fmt"

	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/storage"
)

// Menu serves read-only menu browsing.
type Menu struct {
	store storage.Store
}

// NewMenu constructs the menu service.
func NewMenu(store storage.Store) *Menu {
	return &Menu{store: store}
}

// Categories returns all menu sections in display order.
func (s *Menu) Categories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.Categories(ctx)
	if err != nil {
		logger.Error(ctx, "service.menu", "categories.load.fail",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("menu: load categories: %w", err)
	}
	logger.Debug(ctx, "service.menu", "categories.load",
		slog.String("status", "ok"),
		slog.Int("count", len(cats)),
	)
	return cats, nil
}

// Dishes returns the available dishes of a category in display order.
// Unavailable positions are filtered by the store query.
func (s *Menu) Dishes(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	dishes, err := s.store.DishesByCategory(ctx, categoryID)
	if err != nil {
		logger.Error(ctx, "service.menu", "dishes.load.fail",
			slog.Int64("category_id", categoryID),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("menu: load dishes of category %d: %w", categoryID, err)
	}
	logger.Debug(ctx, "service.menu", "dishes.load",
		slog.String("status", "ok"),
		slog.Int64("category_id", categoryID),
		slog.Int("count", len(dishes)),
	)
	return dishes, nil
}

// Dish returns one dish by id. Returns storage.ErrNotFound for unknown ids.
func (s *Menu) Dish(ctx context.Context, id int64) (models.Dish, error) {
	dish, err := s.store.Dish(ctx, id)
	if err != nil {
		return models.Dish{}, fmt.Errorf("menu: load dish %d: %w", id, err)
	}
	return dish, nil
}
