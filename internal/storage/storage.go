// Package storage declares the persistence contract consumed by the
// services. Implementations live in postgres (production) and stubs
// (in-memory, for tests).
package storage

import (
	"context"
	"errors"
	"time"

	"restobot/internal/models"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("storage: not found")

// Store is the full persistence surface of the bot. Every call is
// fallible and independent; no transactions span multiple calls.
type Store interface {
	// Menu (read-only from the bot's perspective).
	Categories(ctx context.Context) ([]models.Category, error)
	DishesByCategory(ctx context.Context, categoryID int64) ([]models.Dish, error)
	Dish(ctx context.Context, id int64) (models.Dish, error)

	// Sheets.
	Sheet(ctx context.Context, st models.SheetType) (models.Sheet, error)
	UpdateSheet(ctx context.Context, st models.SheetType, content string, editor int64) error

	// Photo assets. UpsertFile must be atomic per file type.
	File(ctx context.Context, ft models.FileType) (models.FileAsset, error)
	UpsertFile(ctx context.Context, asset models.FileAsset) error

	// Admin roster.
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	AddAdmin(ctx context.Context, admin models.Admin) error
	RemoveAdmin(ctx context.Context, userID int64) error
	Admins(ctx context.Context) ([]models.Admin, error)

	// Feedback.
	CreateFeedback(ctx context.Context, fb models.Feedback) (int64, error)
	Feedback(ctx context.Context, id int64) (models.Feedback, error)
	ListFeedback(ctx context.Context, limit int) ([]models.Feedback, error)
	SetFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) error
	DeleteFeedback(ctx context.Context, id int64) error
	PurgeFeedbackBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Close() error
}
