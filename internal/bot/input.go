package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/service"
	tghelpers "restobot/internal/telegram/helpers"
	"restobot/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// onPendingText consumes a text answer to an earlier prompt. The marker is
// cleared before the store write so a repeated message never produces a
// second write.
func (a *App) onPendingText(c tele.Context) error {
	userID := c.Sender().ID
	pending, ok := a.states.Get(userID)
	if !ok {
		return nil
	}

	switch pending.Kind {
	case state.KindSheetText:
		a.states.Clear(userID)
		return a.finishSheetText(c, pending.Sheet, c.Text(), userID)

	case state.KindFeedbackText:
		if pending.Table == 0 {
			text, markup := tableGridScreen()
			return tghelpers.SendHTML(c, text, markup)
		}
		a.states.Clear(userID)
		return a.finishFeedbackText(c, pending, c.Text())

	case state.KindFeedbackReply:
		a.states.Clear(userID)
		return a.finishFeedbackReply(c, pending, c.Text())

	case state.KindSchedulePhoto, state.KindSeatingPhoto:
		return tghelpers.SendText(c, "Жду фото. Отправьте изображение.")
	}
	return nil
}

func (a *App) finishSheetText(c tele.Context, st models.SheetType, content string, editor int64) error {
	ctx := tghelpers.BuildContext(c)
	// The roster may have changed since the prompt was armed.
	if !a.adminOptions().Allowed(ctx, editor) {
		return tghelpers.SendText(c, deniedText)
	}
	if err := a.sheets.Update(ctx, st, content, editor); err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			return tghelpers.SendText(c, "❌ Текст пустой, лист не обновлён.")
		}
		return tghelpers.SendText(c, writeFailedText)
	}

	if err := tghelpers.SendText(c, fmt.Sprintf("✅ %s обновлён!", sheetName(st))); err != nil {
		return err
	}
	return a.onStart(c)
}

func (a *App) finishFeedbackText(c tele.Context, pending state.Pending, message string) error {
	ctx := tghelpers.BuildContext(c)
	sender := c.Sender()

	fb := models.Feedback{
		UserID:      sender.ID,
		Username:    sender.Username,
		FullName:    strings.TrimSpace(sender.FirstName + " " + sender.LastName),
		Message:     message,
		TableNumber: pending.Table,
		Category:    pending.Category,
	}

	id, err := a.feedback.Submit(ctx, fb)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return tghelpers.SendText(c, "❌ Сообщение пустое, обращение не сохранено.")
		}
		return tghelpers.SendText(c, writeFailedText)
	}

	fb.ID = id
	fb.Status = models.StatusNew
	go a.notifyAdmins(logger.Background(), fb)

	if err := tghelpers.SendText(c, "✅ Спасибо! Ваше обращение передано администраторам."); err != nil {
		return err
	}
	return a.onStart(c)
}

func (a *App) finishFeedbackReply(c tele.Context, pending state.Pending, reply string) error {
	ctx := tghelpers.BuildContext(c)

	recipient := &tele.User{ID: pending.TargetChat}
	text := "💬 Ответ администратора:\n\n" + reply
	if _, err := a.bot.Send(recipient, text); err != nil {
		logger.Warn(ctx, "tg", "feedback.reply.fail",
			slog.Int64("feedback_id", pending.FeedbackID),
			slog.Int64("target_chat", pending.TargetChat),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, "❌ Не удалось отправить ответ гостю.")
	}

	if err := a.feedback.MarkReplied(ctx, pending.FeedbackID); err != nil {
		logger.Warn(ctx, "tg", "feedback.mark_replied.fail",
			slog.Int64("feedback_id", pending.FeedbackID),
			slog.String("err", err.Error()),
		)
	}
	return tghelpers.SendText(c, "✅ Ответ отправлен гостю.")
}

// onPendingPhoto consumes a photo answer to a schedule/seating prompt.
func (a *App) onPendingPhoto(c tele.Context) error {
	userID := c.Sender().ID
	pending, ok := a.states.Get(userID)
	if !ok {
		return nil
	}

	var (
		ft       models.FileType
		fileName string
		confirm  string
	)
	switch pending.Kind {
	case state.KindSchedulePhoto:
		ft, fileName, confirm = models.FileSchedule, "График", "✅ График обновлён!"
	case state.KindSeatingPhoto:
		ft, fileName, confirm = models.FileSeating, "Схема посадки", "✅ Схема посадки обновлена!"
	default:
		return tghelpers.SendText(c, "Жду текстовое сообщение.")
	}

	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	a.states.Clear(userID)

	ctx := tghelpers.BuildContext(c)
	// The roster may have changed since the prompt was armed.
	if !a.adminOptions().Allowed(ctx, userID) {
		return tghelpers.SendText(c, deniedText)
	}
	asset := models.FileAsset{
		FileType:  ft,
		FileID:    photo.FileID,
		FileName:  fileName,
		UpdatedBy: userID,
	}
	if err := a.files.Save(ctx, asset); err != nil {
		return tghelpers.SendText(c, writeFailedText)
	}

	if err := tghelpers.SendText(c, confirm); err != nil {
		return err
	}
	return a.onStart(c)
}

// onStrayPhoto handles a photo that no pending marker is waiting for.
func (a *App) onStrayPhoto(c tele.Context) error {
	return tghelpers.SendText(c, "ℹ️ Фото получено. Для обновления графиков обратитесь к администратору.")
}
