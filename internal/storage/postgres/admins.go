package postgres

import (
	"context"
	"fmt"

	"restobot/internal/models"
	"restobot/internal/storage"
)

// IsAdmin reports whether the user is on the admin roster.
func (s *Store) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID)
	if err != nil {
		return false, fmt.Errorf("check admin %d: %w", userID, err)
	}
	return exists, nil
}

// AddAdmin inserts a roster entry, refreshing name fields when the user
// is already present.
func (s *Store) AddAdmin(ctx context.Context, admin models.Admin) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admins (user_id, username, full_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id)
		 DO UPDATE SET username = EXCLUDED.username, full_name = EXCLUDED.full_name`,
		admin.UserID, admin.Username, admin.FullName)
	if err != nil {
		return fmt.Errorf("add admin %d: %w", admin.UserID, err)
	}
	return nil
}

// RemoveAdmin deletes a roster entry.
func (s *Store) RemoveAdmin(ctx context.Context, userID int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("remove admin %d: %w", userID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Admins returns the roster oldest-first.
func (s *Store) Admins(ctx context.Context) ([]models.Admin, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []models.Admin
	err := s.db.SelectContext(ctx, &out,
		`SELECT user_id, username, full_name, created_at FROM admins ORDER BY created_at, user_id`)
	if err != nil {
		return nil, fmt.Errorf("select admins: %w", err)
	}
	return out, nil
}
