package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restobot/internal/models"
	"restobot/internal/storage"
)

// Sheet returns the current content of one sheet.
func (s *Store) Sheet(ctx context.Context, st models.SheetType) (models.Sheet, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var sh models.Sheet
	err := s.db.GetContext(ctx, &sh,
		`SELECT sheet_type, content, updated_by FROM sheets WHERE sheet_type = $1`, st)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sheet{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Sheet{}, fmt.Errorf("select sheet %s: %w", st, err)
	}
	return sh, nil
}

// UpdateSheet replaces the content of one sheet, recording the editor.
// The sheets rows are seeded by migrations, so upsert keeps the call
// correct even on a fresh database.
func (s *Store) UpdateSheet(ctx context.Context, st models.SheetType, content string, editor int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sheets (sheet_type, content, updated_by)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (sheet_type)
		 DO UPDATE SET content = EXCLUDED.content, updated_by = EXCLUDED.updated_by`,
		st, content, editor)
	if err != nil {
		return fmt.Errorf("update sheet %s: %w", st, err)
	}
	return nil
}

// File returns the stored photo asset of one type.
func (s *Store) File(ctx context.Context, ft models.FileType) (models.FileAsset, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var f models.FileAsset
	err := s.db.GetContext(ctx, &f,
		`SELECT file_type, file_id, file_name, updated_by FROM files WHERE file_type = $1`, ft)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileAsset{}, storage.ErrNotFound
	}
	if err != nil {
		return models.FileAsset{}, fmt.Errorf("select file %s: %w", ft, err)
	}
	return f, nil
}

// UpsertFile stores a photo asset in a single atomic statement, so two
// concurrent updates of the same type cannot interleave a check with a
// write.
func (s *Store) UpsertFile(ctx context.Context, asset models.FileAsset) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files (file_type, file_id, file_name, updated_by)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (file_type)
		 DO UPDATE SET file_id = EXCLUDED.file_id,
		               file_name = EXCLUDED.file_name,
		               updated_by = EXCLUDED.updated_by`,
		asset.FileType, asset.FileID, asset.FileName, asset.UpdatedBy)
	if err != nil {
		return fmt.Errorf("upsert file %s: %w", asset.FileType, err)
	}
	return nil
}
