package bot

import (
	"fmt"
	"strconv"
	"strings"

	"restobot/internal/models"
	"restobot/internal/telegram/format"
	"restobot/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback token keys. Each key maps to exactly one registered handler;
// parametrized keys carry their argument in the payload part.
const (
	cbMenu           = "menu"
	cbSheet          = "sheet"
	cbSchedule       = "schedule"
	cbSeating        = "seating"
	cbFeedback       = "feedback"
	cbBackMain       = "back_main"
	cbBackCategories = "back_categories"

	cbCategory  = "category"
	cbDish      = "dish"
	cbSheetView = "sheet_view"

	cbSheetSet    = "sheet_set"
	cbScheduleSet = "schedule_set"
	cbSeatingSet  = "seating_set"

	cbFbCat   = "fb_cat"
	cbFbTable = "fb_table"
	cbFbList  = "fb_list"
	cbFbRead  = "fb_read"
	cbFbReply = "fb_reply"
	cbFbDel   = "fb_del"
)

const (
	deniedText       = "❌ У вас нет прав для выполнения этого действия."
	writeFailedText  = "❌ Не удалось сохранить изменения. Попробуйте ещё раз."
	notFoundText     = "Ничего не найдено."
	feedbackListSize = 10
	dishLabelLimit   = 30
	tablesPerRow     = 5
)

func backButton(unique string) keyboard.InlineBtn {
	return keyboard.InlineBtn{Text: "⬅️ Назад", Unique: unique}
}

// mainMenuScreen is the entry screen shown on /start and after every
// completed flow.
func mainMenuScreen() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🍽 Меню", Unique: cbMenu},
		{Text: "📋 Лист", Unique: cbSheet},
		{Text: "📅 График", Unique: cbSchedule},
		{Text: "🪑 Посадка", Unique: cbSeating},
		{Text: "💬 Обратная связь", Unique: cbFeedback},
	})
	return "Выберите опцию:", markup
}

func categoriesScreen(cats []models.Category) (string, *tele.ReplyMarkup) {
	buttons := make([]keyboard.InlineBtn, 0, len(cats)+1)
	for _, cat := range cats {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Name,
			Unique: cbCategory,
			Data:   strconv.FormatInt(cat.ID, 10),
		})
	}
	buttons = append(buttons, backButton(cbBackMain))
	return "Выберите категорию:", keyboard.InlineButtons(buttons)
}

func dishesScreen(categoryName string, dishes []models.Dish) (string, *tele.ReplyMarkup) {
	buttons := make([]keyboard.InlineBtn, 0, len(dishes)+1)
	for _, dish := range dishes {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   truncateLabel(dish.Name, dishLabelLimit),
			Unique: cbDish,
			Data:   strconv.FormatInt(dish.ID, 10),
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "⬅️ Назад к категориям", Unique: cbBackCategories})

	if len(dishes) == 0 {
		return fmt.Sprintf("В категории «%s» пока нет блюд.", categoryName), keyboard.InlineButtons(buttons)
	}
	return fmt.Sprintf("Блюда в категории «%s»:", categoryName), keyboard.InlineButtons(buttons)
}

func dishCardText(d models.Dish) string {
	var b strings.Builder
	b.WriteString(format.Bold(d.Name))
	b.WriteString("\n\n")

	if d.Composition != "" {
		b.WriteString(format.Italic("Состав:"))
		b.WriteString("\n")
		b.WriteString(format.EscapeHTML(d.Composition))
		b.WriteString("\n\n")
	}
	if d.Description != "" {
		b.WriteString(format.Italic("Описание:"))
		b.WriteString("\n")
		b.WriteString(format.EscapeHTML(d.Description))
		b.WriteString("\n\n")
	}
	if d.Spiciness > 0 {
		b.WriteString(format.Italic("Острота:"))
		b.WriteString(" ")
		b.WriteString(strings.Repeat("🌶", d.Spiciness))
		b.WriteString("\n")
	}
	if tags := d.AllergenTags(); len(tags) > 0 {
		b.WriteString(format.Italic("Аллергены:"))
		b.WriteString(" ")
		b.WriteString(format.EscapeHTML(strings.Join(tags, ", ")))
		b.WriteString("\n")
	}
	if tags := d.FeatureTags(); len(tags) > 0 {
		b.WriteString(format.EscapeHTML(strings.Join(tags, " · ")))
		b.WriteString("\n")
	}
	if d.Price > 0 {
		b.WriteString(format.Italic("Цена:"))
		b.WriteString(fmt.Sprintf(" %d руб.", d.Price))
	} else {
		b.WriteString(format.Italic("Цена:"))
		b.WriteString(" Не указана")
	}
	return b.String()
}

func dishCardMarkup(d models.Dish) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "⬅️ Назад к блюдам", Unique: cbCategory, Data: strconv.FormatInt(d.CategoryID, 10)},
	})
}

func sheetOptionsScreen() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "👁 Go Лист", Unique: cbSheetView, Data: string(models.SheetGo)},
		{Text: "👁 Start Лист", Unique: cbSheetView, Data: string(models.SheetStart)},
		{Text: "✏️ Обновить Go Лист", Unique: cbSheetSet, Data: string(models.SheetGo)},
		{Text: "✏️ Обновить Start Лист", Unique: cbSheetSet, Data: string(models.SheetStart)},
		backButton(cbBackMain),
	})
	return "Выберите опцию для листа:", markup
}

func sheetName(st models.SheetType) string {
	if st == models.SheetGo {
		return "Go Лист"
	}
	return "Start Лист"
}

func sheetScreen(sheet models.Sheet) (string, *tele.ReplyMarkup) {
	text := format.Bold(sheetName(sheet.SheetType)+":") + "\n\n" + format.EscapeHTML(sheet.Content)
	return text, keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbSheet)})
}

func photoScreenMarkup(setKey string, setLabel string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: setLabel, Unique: setKey},
		backButton(cbBackMain),
	})
}

func feedbackCategoryScreen() (string, *tele.ReplyMarkup) {
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "💬 Отзыв", Unique: cbFbCat, Data: string(models.CategoryFeedback)},
		{Text: "⚠️ Жалоба", Unique: cbFbCat, Data: string(models.CategoryComplaint)},
		{Text: "💡 Предложение", Unique: cbFbCat, Data: string(models.CategorySuggestion)},
		backButton(cbBackMain),
	})
	return "Что вы хотите оставить?", markup
}

// tableGridScreen renders table numbers 1..37 in compact rows.
func tableGridScreen() (string, *tele.ReplyMarkup) {
	buttons := make([]keyboard.InlineBtn, 0, models.MaxTable+1)
	for n := models.MinTable; n <= models.MaxTable; n++ {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   strconv.Itoa(n),
			Unique: cbFbTable,
			Data:   strconv.Itoa(n),
		})
	}
	markup := keyboard.InlineButtonsNPerRow(buttons, tablesPerRow)
	markup.InlineKeyboard = append(markup.InlineKeyboard,
		keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbFeedback)}).InlineKeyboard...)
	return "Выберите номер стола:", markup
}

func categoryLabel(cat models.FeedbackCategory) string {
	switch cat {
	case models.CategoryComplaint:
		return "⚠️ Жалоба"
	case models.CategorySuggestion:
		return "💡 Предложение"
	default:
		return "💬 Отзыв"
	}
}

func statusLabel(st models.FeedbackStatus) string {
	switch st {
	case models.StatusRead:
		return "прочитано"
	case models.StatusReplied:
		return "отвечено"
	default:
		return "новое"
	}
}

// feedbackNoticeText is the admin fan-out notification body.
func feedbackNoticeText(fb models.Feedback) string {
	var b strings.Builder
	b.WriteString(format.Bold("Новое обращение #" + strconv.FormatInt(fb.ID, 10)))
	b.WriteString("\n\n")
	b.WriteString(categoryLabel(fb.Category))
	b.WriteString(fmt.Sprintf(" · стол %d\n", fb.TableNumber))
	b.WriteString("От: ")
	b.WriteString(format.Mention(fb.UserID, displayName(fb)))
	b.WriteString("\n\n")
	b.WriteString(format.EscapeHTML(fb.Message))
	return b.String()
}

func displayName(fb models.Feedback) string {
	if fb.FullName != "" {
		return fb.FullName
	}
	if fb.Username != "" {
		return "@" + fb.Username
	}
	return strconv.FormatInt(fb.UserID, 10)
}

func feedbackListScreen(items []models.Feedback) (string, *tele.ReplyMarkup) {
	if len(items) == 0 {
		return "Пока нет обращений.", keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackMain)})
	}
	buttons := make([]keyboard.InlineBtn, 0, len(items)+1)
	for _, fb := range items {
		label := fmt.Sprintf("#%d %s · стол %d · %s",
			fb.ID, categoryLabel(fb.Category), fb.TableNumber, statusLabel(fb.Status))
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   label,
			Unique: cbFbRead,
			Data:   strconv.FormatInt(fb.ID, 10),
		})
	}
	buttons = append(buttons, backButton(cbBackMain))
	return "Обращения гостей:", keyboard.InlineButtons(buttons)
}

func feedbackCardScreen(fb models.Feedback) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString(format.Bold("Обращение #" + strconv.FormatInt(fb.ID, 10)))
	b.WriteString("\n\n")
	b.WriteString(categoryLabel(fb.Category))
	b.WriteString(fmt.Sprintf(" · стол %d\n", fb.TableNumber))
	b.WriteString("От: ")
	b.WriteString(format.Mention(fb.UserID, displayName(fb)))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(fb.CreatedAt.Format("02.01.2006 15:04"))
	b.WriteString("\n\n")
	b.WriteString(format.EscapeHTML(fb.Message))

	id := strconv.FormatInt(fb.ID, 10)
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "↩️ Ответить", Unique: cbFbReply, Data: id},
		{Text: "🗑 Удалить", Unique: cbFbDel, Data: id},
		{Text: "⬅️ К списку", Unique: cbFbList},
	})
	return b.String(), markup
}

func adminListText(admins []models.Admin) string {
	if len(admins) == 0 {
		return "📋 Список администраторов пуст."
	}
	var b strings.Builder
	b.WriteString(format.Bold("📋 Список администраторов:"))
	b.WriteString("\n\n")
	for _, a := range admins {
		b.WriteString(fmt.Sprintf("🆔 ID: %d\n", a.UserID))
		if a.FullName != "" {
			b.WriteString("👤 Имя: " + format.EscapeHTML(a.FullName) + "\n")
		}
		if a.Username != "" {
			b.WriteString("📱 Username: @" + format.EscapeHTML(a.Username) + "\n")
		}
		b.WriteString("📅 Добавлен: " + a.CreatedAt.Format("02.01.2006") + "\n")
		b.WriteString(strings.Repeat("─", 20) + "\n")
	}
	return b.String()
}

func truncateLabel(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
