// Package models defines the persistent entities of the restaurant bot.
package models

import (
	"strings"
	"time"
)

// SheetType selects one of the two editable free-text sheets.
type SheetType string

const (
	SheetGo    SheetType = "go"
	SheetStart SheetType = "start"
)

// ValidSheetType reports whether s names a known sheet.
func ValidSheetType(s string) bool {
	return s == string(SheetGo) || s == string(SheetStart)
}

// FileType selects one of the stored photo assets.
type FileType string

const (
	FileSchedule FileType = "schedule"
	FileSeating  FileType = "seating"
)

// FeedbackCategory classifies a guest submission.
type FeedbackCategory string

const (
	CategoryFeedback   FeedbackCategory = "feedback"
	CategoryComplaint  FeedbackCategory = "complaint"
	CategorySuggestion FeedbackCategory = "suggestion"
)

// ValidFeedbackCategory reports whether c names a known category.
func ValidFeedbackCategory(c string) bool {
	switch FeedbackCategory(c) {
	case CategoryFeedback, CategoryComplaint, CategorySuggestion:
		return true
	}
	return false
}

// FeedbackStatus tracks the admin-side lifecycle of a submission.
type FeedbackStatus string

const (
	StatusNew     FeedbackStatus = "new"
	StatusRead    FeedbackStatus = "read"
	StatusReplied FeedbackStatus = "replied"
)

// MinTable and MaxTable bound the seating plan of the restaurant.
const (
	MinTable = 1
	MaxTable = 37
)

// Category is a menu section. The bot never mutates categories.
type Category struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}

// Dish is a single menu position.
type Dish struct {
	ID          int64   `db:"id"`
	CategoryID  int64   `db:"category_id"`
	Name        string  `db:"name"`
	Composition string  `db:"composition"`
	Description string  `db:"description"`
	Price       int     `db:"price"`
	Spiciness   int     `db:"spiciness"`
	Allergens   string  `db:"allergens"`
	Features    string  `db:"features"`
	PhotoFileID *string `db:"photo_file_id"`
	IsAvailable bool    `db:"is_available"`
	SortOrder   int     `db:"sort_order"`
}

// AllergenTags splits the comma-delimited allergen list into clean tags.
func (d Dish) AllergenTags() []string {
	return splitTags(d.Allergens)
}

// FeatureTags splits the comma-delimited feature list into clean tags.
func (d Dish) FeatureTags() []string {
	return splitTags(d.Features)
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Sheet is an admin-editable free-text document shown to every guest.
type Sheet struct {
	SheetType SheetType `db:"sheet_type"`
	Content   string    `db:"content"`
	UpdatedBy int64     `db:"updated_by"`
}

// FileAsset references a Telegram photo by its file id.
type FileAsset struct {
	FileType  FileType `db:"file_type"`
	FileID    string   `db:"file_id"`
	FileName  string   `db:"file_name"`
	UpdatedBy int64    `db:"updated_by"`
}

// Admin is a user allowed to edit sheets, assets, and manage feedback.
type Admin struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

// Feedback is a table-tagged guest submission.
type Feedback struct {
	ID          int64            `db:"id"`
	UserID      int64            `db:"user_id"`
	Username    string           `db:"username"`
	FullName    string           `db:"full_name"`
	Message     string           `db:"message"`
	TableNumber int              `db:"table_number"`
	Category    FeedbackCategory `db:"category"`
	Status      FeedbackStatus   `db:"status"`
	CreatedAt   time.Time        `db:"created_at"`
}
