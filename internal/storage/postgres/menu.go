package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restobot/internal/models"
	"restobot/internal/storage"
)

// Categories returns all menu sections ordered for display.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []models.Category
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, name, sort_order FROM categories ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return out, nil
}

// DishesByCategory returns the available dishes of one section ordered
// for display.
func (s *Store) DishesByCategory(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []models.Dish
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, category_id, name, composition, description, price,
		        spiciness, allergens, features, photo_file_id, is_available, sort_order
		   FROM dishes
		  WHERE category_id = $1 AND is_available
		  ORDER BY sort_order, id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("select dishes: %w", err)
	}
	return out, nil
}

// Dish returns a single dish by id.
func (s *Store) Dish(ctx context.Context, id int64) (models.Dish, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var d models.Dish
	err := s.db.GetContext(ctx, &d,
		`SELECT id, category_id, name, composition, description, price,
		        spiciness, allergens, features, photo_file_id, is_available, sort_order
		   FROM dishes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dish{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Dish{}, fmt.Errorf("select dish %d: %w", id, err)
	}
	return d, nil
}
