package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restobot/internal/models"
	"restobot/internal/storage"
)

// CreateFeedback inserts a submission and returns its id.
func (s *Store) CreateFeedback(ctx context.Context, fb models.Feedback) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var id int64
	err := s.db.GetContext(ctx, &id,
		`INSERT INTO feedback (user_id, username, full_name, message, table_number, category, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		fb.UserID, fb.Username, fb.FullName, fb.Message, fb.TableNumber, fb.Category, fb.Status)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}
	return id, nil
}

// Feedback returns a single submission by id.
func (s *Store) Feedback(ctx context.Context, id int64) (models.Feedback, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var fb models.Feedback
	err := s.db.GetContext(ctx, &fb,
		`SELECT id, user_id, username, full_name, message, table_number, category, status, created_at
		   FROM feedback WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Feedback{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Feedback{}, fmt.Errorf("select feedback %d: %w", id, err)
	}
	return fb, nil
}

// ListFeedback returns the newest submissions, most recent first.
func (s *Store) ListFeedback(ctx context.Context, limit int) ([]models.Feedback, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []models.Feedback
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, user_id, username, full_name, message, table_number, category, status, created_at
		   FROM feedback ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	return out, nil
}

// SetFeedbackStatus moves a submission to the given status. Setting the
// status it already has changes nothing and is not an error.
func (s *Store) SetFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE feedback SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set feedback %d status: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteFeedback removes exactly one submission.
func (s *Store) DeleteFeedback(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feedback %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// PurgeFeedbackBefore deletes submissions created before the cutoff and
// reports how many rows were removed.
func (s *Store) PurgeFeedbackBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge feedback rows: %w", err)
	}
	return n, nil
}
