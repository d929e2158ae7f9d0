package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/storage"
)

// ErrEmptyContent rejects blank sheet updates.
var ErrEmptyContent = errors.New("service: empty sheet content")

// Sheets manages the two editable free-text documents.
type Sheets struct {
	store storage.Store
}

// NewSheets constructs the sheets service.
func NewSheets(store storage.Store) *Sheets {
	return &Sheets{store: store}
}

// Get returns the current content of a sheet.
func (s *Sheets) Get(ctx context.Context, st models.SheetType) (models.Sheet, error) {
	sheet, err := s.store.Sheet(ctx, st)
	if err != nil {
		logger.Error(ctx, "service.sheets", "sheet.load.fail",
			slog.String("sheet_type", string(st)),
			slog.String("err", err.Error()),
		)
		return models.Sheet{}, fmt.Errorf("sheets: load %s: %w", st, err)
	}
	return sheet, nil
}

// Update replaces the sheet content and records the editor.
func (s *Sheets) Update(ctx context.Context, st models.SheetType, content string, editor int64) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if err := s.store.UpdateSheet(ctx, st, content, editor); err != nil {
		logger.Error(ctx, "service.sheets", "sheet.update.fail",
			slog.String("sheet_type", string(st)),
			slog.Int64("user_id", editor),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("sheets: update %s: %w", st, err)
	}
	logger.Info(ctx, "service.sheets", "sheet.updated",
		slog.String("status", "ok"),
		slog.String("sheet_type", string(st)),
		slog.Int64("user_id", editor),
	)
	return nil
}
