// Package stubs provides an in-memory storage.Store used by tests and
// local development without a database.
package stubs

import (
	"context"
	"sort"
	"sync"
	"time"

	"restobot/internal/models"
	"restobot/internal/storage"
)

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps all tables in process memory behind one mutex.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []models.Category
	dishes     []models.Dish
	sheets     map[models.SheetType]models.Sheet
	files      map[models.FileType]models.FileAsset
	admins     map[int64]models.Admin
	feedback   map[int64]models.Feedback
	nextFB     int64

	// FailReads and FailWrites force errors to exercise degradation paths.
	FailReads  error
	FailWrites error
}

// NewMemoryStore returns an empty store with seeded sheet rows, matching
// what migrations guarantee for the real database.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sheets: map[models.SheetType]models.Sheet{
			models.SheetGo:    {SheetType: models.SheetGo},
			models.SheetStart: {SheetType: models.SheetStart},
		},
		files:    make(map[models.FileType]models.FileAsset),
		admins:   make(map[int64]models.Admin),
		feedback: make(map[int64]models.Feedback),
		nextFB:   1,
	}
}

// SeedMenu replaces the menu reference data.
func (m *MemoryStore) SeedMenu(categories []models.Category, dishes []models.Dish) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]models.Category(nil), categories...)
	m.dishes = append([]models.Dish(nil), dishes...)
}

// Categories returns all menu sections ordered for display.
func (m *MemoryStore) Categories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := append([]models.Category(nil), m.categories...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DishesByCategory returns available dishes of one section ordered for display.
func (m *MemoryStore) DishesByCategory(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	var out []models.Dish
	for _, d := range m.dishes {
		if d.CategoryID == categoryID && d.IsAvailable {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Dish returns a single dish by id.
func (m *MemoryStore) Dish(ctx context.Context, id int64) (models.Dish, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return models.Dish{}, m.FailReads
	}
	for _, d := range m.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Dish{}, storage.ErrNotFound
}

// Sheet returns the current content of one sheet.
func (m *MemoryStore) Sheet(ctx context.Context, st models.SheetType) (models.Sheet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return models.Sheet{}, m.FailReads
	}
	sh, ok := m.sheets[st]
	if !ok {
		return models.Sheet{}, storage.ErrNotFound
	}
	return sh, nil
}

// UpdateSheet replaces the content of one sheet.
func (m *MemoryStore) UpdateSheet(ctx context.Context, st models.SheetType, content string, editor int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.sheets[st] = models.Sheet{SheetType: st, Content: content, UpdatedBy: editor}
	return nil
}

// File returns the stored photo asset of one type.
func (m *MemoryStore) File(ctx context.Context, ft models.FileType) (models.FileAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return models.FileAsset{}, m.FailReads
	}
	f, ok := m.files[ft]
	if !ok {
		return models.FileAsset{}, storage.ErrNotFound
	}
	return f, nil
}

// UpsertFile stores a photo asset.
func (m *MemoryStore) UpsertFile(ctx context.Context, asset models.FileAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.files[asset.FileType] = asset
	return nil
}

// IsAdmin reports whether the user is on the roster.
func (m *MemoryStore) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return false, m.FailReads
	}
	_, ok := m.admins[userID]
	return ok, nil
}

// AddAdmin inserts or refreshes a roster entry.
func (m *MemoryStore) AddAdmin(ctx context.Context, admin models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	if existing, ok := m.admins[admin.UserID]; ok {
		admin.CreatedAt = existing.CreatedAt
	}
	m.admins[admin.UserID] = admin
	return nil
}

// RemoveAdmin deletes a roster entry.
func (m *MemoryStore) RemoveAdmin(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if _, ok := m.admins[userID]; !ok {
		return storage.ErrNotFound
	}
	delete(m.admins, userID)
	return nil
}

// Admins returns the roster oldest-first.
func (m *MemoryStore) Admins(ctx context.Context) ([]models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := make([]models.Admin, 0, len(m.admins))
	for _, a := range m.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

// CreateFeedback inserts a submission and returns its id.
func (m *MemoryStore) CreateFeedback(ctx context.Context, fb models.Feedback) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return 0, m.FailWrites
	}
	fb.ID = m.nextFB
	m.nextFB++
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	m.feedback[fb.ID] = fb
	return fb.ID, nil
}

// Feedback returns a single submission by id.
func (m *MemoryStore) Feedback(ctx context.Context, id int64) (models.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return models.Feedback{}, m.FailReads
	}
	fb, ok := m.feedback[id]
	if !ok {
		return models.Feedback{}, storage.ErrNotFound
	}
	return fb, nil
}

// ListFeedback returns the newest submissions, most recent first.
func (m *MemoryStore) ListFeedback(ctx context.Context, limit int) ([]models.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := make([]models.Feedback, 0, len(m.feedback))
	for _, fb := range m.feedback {
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetFeedbackStatus moves a submission to the given status.
func (m *MemoryStore) SetFeedbackStatus(ctx context.Context, id int64, status models.FeedbackStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	fb, ok := m.feedback[id]
	if !ok {
		return storage.ErrNotFound
	}
	fb.Status = status
	m.feedback[id] = fb
	return nil
}

// DeleteFeedback removes exactly one submission.
func (m *MemoryStore) DeleteFeedback(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if _, ok := m.feedback[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.feedback, id)
	return nil
}

// PurgeFeedbackBefore deletes submissions created before the cutoff.
func (m *MemoryStore) PurgeFeedbackBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return 0, m.FailWrites
	}
	var n int64
	for id, fb := range m.feedback {
		if fb.CreatedAt.Before(cutoff) {
			delete(m.feedback, id)
			n++
		}
	}
	return n, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
