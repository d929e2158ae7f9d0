package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/storage"
)

var (
	// ErrInvalidTable rejects table numbers outside the seating plan.
	ErrInvalidTable = errors.New("service: table number out of range")
	// ErrInvalidFeedbackCategory rejects unknown categories.
	ErrInvalidFeedbackCategory = errors.New("service: invalid feedback category")
	// ErrEmptyMessage rejects blank submissions.
	ErrEmptyMessage = errors.New("service: empty feedback message")
)

// Feedback manages guest submissions and their admin-side lifecycle.
type Feedback struct {
	store storage.Store
}

// NewFeedback constructs the feedback service.
func NewFeedback(store storage.Store) *Feedback {
	return &Feedback{store: store}
}

// Submit validates and stores one guest submission, returning its id.
// The stored row always starts with status new.
func (s *Feedback) Submit(ctx context.Context, fb models.Feedback) (int64, error) {
	if fb.TableNumber < models.MinTable || fb.TableNumber > models.MaxTable {
		return 0, ErrInvalidTable
	}
	if !models.ValidFeedbackCategory(string(fb.Category)) {
		return 0, ErrInvalidFeedbackCategory
	}
	if strings.TrimSpace(fb.Message) == "" {
		return 0, ErrEmptyMessage
	}
	fb.Status = models.StatusNew

	id, err := s.store.CreateFeedback(ctx, fb)
	if err != nil {
		logger.Error(ctx, "service.feedback", "feedback.create.fail",
			slog.Int64("user_id", fb.UserID),
			slog.Int("table", fb.TableNumber),
			slog.String("category", string(fb.Category)),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("feedback: create: %w", err)
	}
	logger.Info(ctx, "service.feedback", "feedback.created",
		slog.String("status", "ok"),
		slog.Int64("feedback_id", id),
		slog.Int64("user_id", fb.UserID),
		slog.Int("table", fb.TableNumber),
		slog.String("category", string(fb.Category)),
	)
	return id, nil
}

// Get returns one submission by id.
func (s *Feedback) Get(ctx context.Context, id int64) (models.Feedback, error) {
	fb, err := s.store.Feedback(ctx, id)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback: load %d: %w", id, err)
	}
	return fb, nil
}

// List returns the newest submissions up to limit.
func (s *Feedback) List(ctx context.Context, limit int) ([]models.Feedback, error) {
	items, err := s.store.ListFeedback(ctx, limit)
	if err != nil {
		logger.Error(ctx, "service.feedback", "feedback.list.fail",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("feedback: list: %w", err)
	}
	return items, nil
}

// MarkRead sets status read. Marking an already-read item is a no-op
// that still succeeds.
func (s *Feedback) MarkRead(ctx context.Context, id int64) error {
	if err := s.store.SetFeedbackStatus(ctx, id, models.StatusRead); err != nil {
		return fmt.Errorf("feedback: mark read %d: %w", id, err)
	}
	return nil
}

// MarkReplied sets status replied after an admin answer was delivered.
func (s *Feedback) MarkReplied(ctx context.Context, id int64) error {
	if err := s.store.SetFeedbackStatus(ctx, id, models.StatusReplied); err != nil {
		return fmt.Errorf("feedback: mark replied %d: %w", id, err)
	}
	return nil
}

// Delete removes exactly one submission.
func (s *Feedback) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteFeedback(ctx, id); err != nil {
		return fmt.Errorf("feedback: delete %d: %w", id, err)
	}
	logger.Info(ctx, "service.feedback", "feedback.deleted",
		slog.String("status", "ok"),
		slog.Int64("feedback_id", id),
	)
	return nil
}

// Purge deletes all submissions older than maxAge and returns the count.
func (s *Feedback) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	deleted, err := s.store.PurgeFeedbackBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("feedback: purge before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return deleted, nil
}
