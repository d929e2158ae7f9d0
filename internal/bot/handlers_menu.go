package bot

import (
	"errors"
	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/storage"
	"restobot/internal/telegram/callbacks"
	"restobot/internal/telegram/format"
	tghelpers "restobot/internal/telegram/helpers"
	"restobot/internal/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

func (a *App) onStart(c tele.Context) error {
	text, markup := mainMenuScreen()
	return tghelpers.SendHTML(c, text, markup)
}

func (a *App) onMainMenu(c tele.Context) error {
	text, markup := mainMenuScreen()
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onDenied(c tele.Context) error {
	return tghelpers.EditOrSendHTML(c, deniedText,
		keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackMain)}))
}

func (a *App) onUnknownCallback(c tele.Context) error {
	_ = c.Respond(&tele.CallbackResponse{Text: "Неизвестное действие"})
	return nil
}

func (a *App) onCategories(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	cats, err := a.menu.Categories(ctx)
	if err != nil || len(cats) == 0 {
		return tghelpers.EditOrSendHTML(c, "❌ Категории не найдены.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackMain)}))
	}
	text, markup := categoriesScreen(cats)
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onCategory(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	categoryID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.EditOrSendHTML(c, notFoundText,
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackCategories)}))
	}

	dishes, err := a.menu.Dishes(ctx, categoryID)
	if err != nil {
		dishes = nil
	}

	name := "Категория"
	if cats, err := a.menu.Categories(ctx); err == nil {
		for _, cat := range cats {
			if cat.ID == categoryID {
				name = cat.Name
				break
			}
		}
	}

	text, markup := dishesScreen(name, dishes)
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onDish(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	dishID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.EditOrSendHTML(c, "Блюдо не найдено.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackCategories)}))
	}

	dish, err := a.menu.Dish(ctx, dishID)
	if err != nil {
		if !isNotFound(err) {
			logger.Warn(ctx, "tg", "dish.load.fail",
				slog.Int64("dish_id", dishID),
				slog.String("err", err.Error()),
			)
		}
		return tghelpers.EditOrSendHTML(c, "Блюдо не найдено.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbBackCategories)}))
	}

	text := dishCardText(dish)
	markup := dishCardMarkup(dish)

	if fileID := format.DerefString(dish.PhotoFileID, ""); fileID != "" {
		photo := &tele.Photo{
			File:    tele.File{FileID: fileID},
			Caption: text,
		}
		sendErr := c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup})
		if sendErr == nil {
			return nil
		}
		logger.Warn(ctx, "tg", "dish.photo.fail",
			slog.Int64("dish_id", dish.ID),
			slog.String("err", sendErr.Error()),
		)
	}

	return tghelpers.EditOrSendHTML(c, text, markup)
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
