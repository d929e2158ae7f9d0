package service

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/storage"
)

// ErrInvalidUserID rejects roster operations on non-positive ids.
var ErrInvalidUserID = errors.New("service: invalid user id")

// Admins manages the admin roster. It satisfies the admin-gate
// middleware's checker interface, so the roster in the store is the
// single source of truth for permissions.
type Admins struct {
	store storage.Store
}

// NewAdmins constructs the admins service.
func NewAdmins(store storage.Store) *Admins {
	return &Admins{store: store}
}

// IsAdmin reports roster membership.
func (s *Admins) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	ok, err := s.store.IsAdmin(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("admins: check %d: %w", userID, err)
	}
	return ok, nil
}

// Add inserts a user into the roster. Re-adding refreshes the stored names.
func (s *Admins) Add(ctx context.Context, admin models.Admin) error {
	if admin.UserID <= 0 {
		return ErrInvalidUserID
	}
	if err := s.store.AddAdmin(ctx, admin); err != nil {
		logger.Error(ctx, "service.admins", "admin.add.fail",
			slog.Int64("user_id", admin.UserID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("admins: add %d: %w", admin.UserID, err)
	}
	logger.Info(ctx, "service.admins", "admin.added",
		slog.String("status", "ok"),
		slog.Int64("user_id", admin.UserID),
		slog.String("username", logger.SanitizeLimit(admin.Username, 64)),
	)
	return nil
}

// Remove deletes a user from the roster.
// Returns storage.ErrNotFound when the user was not a roster member.
func (s *Admins) Remove(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if err := s.store.RemoveAdmin(ctx, userID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error(ctx, "service.admins", "admin.remove.fail",
				slog.Int64("user_id", userID),
				slog.String("err", err.Error()),
			)
		}
		return fmt.Errorf("admins: remove %d: %w", userID, err)
	}
	logger.Info(ctx, "service.admins", "admin.removed",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
	)
	return nil
}

// List returns the roster ordered by creation time.
func (s *Admins) List(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.store.Admins(ctx)
	if err != nil {
		logger.Error(ctx, "service.admins", "admin.list.fail",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("admins: list: %w", err)
	}
	return admins, nil
}
