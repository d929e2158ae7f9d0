package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restobot/internal/models"
)

func TestMainMenuScreen(t *testing.T) {
	text, markup := mainMenuScreen()
	assert.Equal(t, "Выберите опцию:", text)
	require.Len(t, markup.InlineKeyboard, 5)
	assert.Equal(t, cbMenu, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, cbFeedback, markup.InlineKeyboard[4][0].Unique)
}

func TestTableGridCoversAllTables(t *testing.T) {
	_, markup := tableGridScreen()

	var tables int
	for _, row := range markup.InlineKeyboard {
		require.LessOrEqual(t, len(row), tablesPerRow)
		for _, btn := range row {
			if btn.Unique == cbFbTable {
				tables++
			}
		}
	}
	assert.Equal(t, models.MaxTable, tables)

	// The last row is the back button.
	last := markup.InlineKeyboard[len(markup.InlineKeyboard)-1]
	require.Len(t, last, 1)
	assert.Equal(t, cbFeedback, last[0].Unique)
}

func TestDishCardText(t *testing.T) {
	photo := "file123"
	d := models.Dish{
		ID:          1,
		CategoryID:  2,
		Name:        "Том Ям <острый>",
		Composition: "креветки, кокосовое молоко",
		Description: "Классический тайский суп",
		Price:       590,
		Spiciness:   3,
		Allergens:   "ракообразные",
		PhotoFileID: &photo,
		IsAvailable: true,
	}

	text := dishCardText(d)
	assert.Contains(t, text, "<b>Том Ям &lt;острый&gt;</b>", "name must be escaped")
	assert.Contains(t, text, "креветки, кокосовое молоко")
	assert.Contains(t, text, "🌶🌶🌶")
	assert.Contains(t, text, "ракообразные")
	assert.Contains(t, text, "590 руб.")
}

func TestDishCardTextNoPrice(t *testing.T) {
	text := dishCardText(models.Dish{Name: "Хлеб"})
	assert.Contains(t, text, "Не указана")
}

func TestDishesScreenEmptyCategory(t *testing.T) {
	text, markup := dishesScreen("Супы", nil)
	assert.Contains(t, text, "пока нет блюд")
	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, cbBackCategories, markup.InlineKeyboard[0][0].Unique)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "короткое", truncateLabel("короткое", dishLabelLimit))
	long := strings.Repeat("п", 40)
	got := truncateLabel(long, dishLabelLimit)
	assert.Equal(t, strings.Repeat("п", 30)+"...", got)
}

func TestFeedbackNoticeText(t *testing.T) {
	fb := models.Feedback{
		ID:          7,
		UserID:      1001,
		FullName:    "Иван Петров",
		Message:     "Очень <вкусно>",
		TableNumber: 12,
		Category:    models.CategoryComplaint,
	}

	text := feedbackNoticeText(fb)
	assert.Contains(t, text, "Новое обращение #7")
	assert.Contains(t, text, "стол 12")
	assert.Contains(t, text, `tg://user?id=1001`)
	assert.Contains(t, text, "Иван Петров")
	assert.Contains(t, text, "Очень &lt;вкусно&gt;", "message must be escaped")
}

func TestFeedbackListScreen(t *testing.T) {
	now := time.Now()
	items := []models.Feedback{
		{ID: 2, TableNumber: 3, Category: models.CategoryFeedback, Status: models.StatusNew, CreatedAt: now},
		{ID: 1, TableNumber: 8, Category: models.CategorySuggestion, Status: models.StatusRead, CreatedAt: now.Add(-time.Hour)},
	}

	text, markup := feedbackListScreen(items)
	assert.Equal(t, "Обращения гостей:", text)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Contains(t, markup.InlineKeyboard[0][0].Text, "#2")
	assert.Contains(t, markup.InlineKeyboard[1][0].Text, "#1")
}

func TestFeedbackListScreenEmpty(t *testing.T) {
	text, _ := feedbackListScreen(nil)
	assert.Equal(t, "Пока нет обращений.", text)
}

func TestAdminListText(t *testing.T) {
	assert.Equal(t, "📋 Список администраторов пуст.", adminListText(nil))

	admins := []models.Admin{
		{UserID: 42, Username: "maitre", FullName: "Мэтр", CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	text := adminListText(admins)
	assert.Contains(t, text, "ID: 42")
	assert.Contains(t, text, "@maitre")
	assert.Contains(t, text, "15.01.2026")
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "Имя", displayName(models.Feedback{UserID: 1, FullName: "Имя", Username: "u"}))
	assert.Equal(t, "@u", displayName(models.Feedback{UserID: 1, Username: "u"}))
	assert.Equal(t, "1", displayName(models.Feedback{UserID: 1}))
}
