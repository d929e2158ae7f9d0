package bot

import (
	"log/slog"
	"strings"

	"restobot/internal/logger"
	"restobot/internal/models"
	tghelpers "restobot/internal/telegram/helpers"
	"restobot/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

func (a *App) onSchedule(c tele.Context) error {
	return a.sendFileScreen(c, models.FileSchedule,
		"📅 График работы",
		"📅 График еще не загружен.",
		photoScreenMarkup(cbScheduleSet, "✏️ Обновить график"))
}

func (a *App) onSeating(c tele.Context) error {
	return a.sendFileScreen(c, models.FileSeating,
		"🪑 Схема посадки",
		"🪑 Схема посадки еще не загружена.",
		photoScreenMarkup(cbSeatingSet, "✏️ Обновить схему"))
}

// sendFileScreen re-sends the stored photo as a fresh message, or renders
// an empty-state screen when nothing is uploaded yet.
func (a *App) sendFileScreen(c tele.Context, ft models.FileType, caption, emptyText string, markup *tele.ReplyMarkup) error {
	ctx := tghelpers.BuildContext(c)

	asset, err := a.files.Get(ctx, ft)
	if err != nil || strings.TrimSpace(asset.FileID) == "" {
		return tghelpers.EditOrSendHTML(c, emptyText, markup)
	}

	photo := &tele.Photo{
		File:    tele.File{FileID: asset.FileID},
		Caption: caption,
	}
	if sendErr := c.Send(photo, &tele.SendOptions{ReplyMarkup: markup}); sendErr != nil {
		logger.Warn(ctx, "tg", "file.photo.fail",
			slog.String("file_type", string(ft)),
			slog.String("err", sendErr.Error()),
		)
		return tghelpers.EditOrSendHTML(c,
			"❌ Ошибка при загрузке фото. Попробуйте обновить его.", markup)
	}
	return nil
}

func (a *App) onScheduleSet(c tele.Context) error {
	a.states.Set(c.Sender().ID, state.Pending{Kind: state.KindSchedulePhoto})
	return tghelpers.EditOrSendHTML(c, "Отправьте новое фото графика:")
}

func (a *App) onSeatingSet(c tele.Context) error {
	a.states.Set(c.Sender().ID, state.Pending{Kind: state.KindSeatingPhoto})
	return tghelpers.EditOrSendHTML(c, "Отправьте новое фото схемы посадки:")
}
