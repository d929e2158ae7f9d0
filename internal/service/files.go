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

// ErrEmptyFileID rejects photo updates without a Telegram file reference.
var ErrEmptyFileID = errors.New("service: empty file id")

// Files manages the stored photo assets (schedule, seating plan).
type Files struct {
	store storage.Store
}

// NewFiles constructs the files service.
func NewFiles(store storage.Store) *Files {
	return &Files{store: store}
}

// Get returns the current asset of the given type.
// Returns storage.ErrNotFound when no photo was uploaded yet.
func (s *Files) Get(ctx context.Context, ft models.FileType) (models.FileAsset, error) {
	asset, err := s.store.File(ctx, ft)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error(ctx, "service.files", "file.load.fail",
				slog.String("file_type", string(ft)),
				slog.String("err", err.Error()),
			)
		}
		return models.FileAsset{}, fmt.Errorf("files: load %s: %w", ft, err)
	}
	return asset, nil
}

// Save stores a new photo reference, replacing any previous one atomically.
func (s *Files) Save(ctx context.Context, asset models.FileAsset) error {
	if strings.TrimSpace(asset.FileID) == "" {
		return ErrEmptyFileID
	}
	if err := s.store.UpsertFile(ctx, asset); err != nil {
		logger.Error(ctx, "service.files", "file.save.fail",
			slog.String("file_type", string(asset.FileType)),
			slog.Int64("user_id", asset.UpdatedBy),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("files: save %s: %w", asset.FileType, err)
	}
	logger.Info(ctx, "service.files", "file.saved",
		slog.String("status", "ok"),
		slog.String("file_type", string(asset.FileType)),
		slog.Int64("user_id", asset.UpdatedBy),
	)
	return nil
}
