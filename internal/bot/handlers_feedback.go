package bot

import (
	"context"
	"log/slog"

	"restobot/internal/logger"
	"restobot/internal/models"
	"restobot/internal/telegram/callbacks"
	tghelpers "restobot/internal/telegram/helpers"
	"restobot/internal/telegram/keyboard"
	"restobot/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

func (a *App) onFeedbackEntry(c tele.Context) error {
	text, markup := feedbackCategoryScreen()
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onFeedbackCategory(c tele.Context) error {
	payload := callbacks.CallbackPayload(c)
	if !models.ValidFeedbackCategory(payload) {
		text, markup := feedbackCategoryScreen()
		return tghelpers.EditOrSendHTML(c, text, markup)
	}

	a.states.Set(c.Sender().ID, state.Pending{
		Kind:     state.KindFeedbackText,
		Category: models.FeedbackCategory(payload),
	})
	text, markup := tableGridScreen()
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onFeedbackTable(c tele.Context) error {
	table, err := callbacks.PayloadInt(c)
	if err != nil || table < models.MinTable || table > models.MaxTable {
		text, markup := tableGridScreen()
		return tghelpers.EditOrSendHTML(c, text, markup)
	}

	userID := c.Sender().ID
	pending, ok := a.states.Get(userID)
	if !ok || pending.Kind != state.KindFeedbackText {
		// The category pick expired (e.g. process restart); start over.
		text, markup := feedbackCategoryScreen()
		return tghelpers.EditOrSendHTML(c, text, markup)
	}

	pending.Table = table
	a.states.Set(userID, pending)
	return tghelpers.EditOrSendHTML(c, "Напишите ваше сообщение:")
}

// notifyAdmins broadcasts a new submission to every roster admin.
// Failures are logged per recipient and never interrupt the rest.
func (a *App) notifyAdmins(ctx context.Context, fb models.Feedback) {
	admins, err := a.admins.List(ctx)
	if err != nil {
		logger.Warn(ctx, "tg", "feedback.fanout.skip",
			slog.Int64("feedback_id", fb.ID),
			slog.String("err", err.Error()),
		)
		return
	}

	text := feedbackNoticeText(fb)
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
	for _, admin := range admins {
		recipient := &tele.User{ID: admin.UserID}
		adminID := admin.UserID
		send := func() error {
			_, err := a.bot.Send(recipient, text, opts)
			return err
		}

		if a.dispatcher != nil {
			if err := a.dispatcher.Enqueue(ctx, "send.feedback_notice", "sendMessage", send); err == nil {
				continue
			}
		}
		if err := send(); err != nil {
			logger.Warn(ctx, "tg", "feedback.fanout.fail",
				slog.Int64("feedback_id", fb.ID),
				slog.Int64("admin_id", adminID),
				slog.String("err", err.Error()),
			)
		}
	}
}

func (a *App) onFeedbackList(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	items, err := a.feedback.List(ctx, feedbackListSize)
	if err != nil {
		items = nil
	}
	text, markup := feedbackListScreen(items)
	return tghelpers.SendHTML(c, text, markup)
}

func (a *App) onFeedbackListScreen(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	items, err := a.feedback.List(ctx, feedbackListSize)
	if err != nil {
		items = nil
	}
	text, markup := feedbackListScreen(items)
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onFeedbackRead(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.onFeedbackListScreen(c)
	}

	fb, err := a.feedback.Get(ctx, id)
	if err != nil {
		return tghelpers.EditOrSendHTML(c, "Обращение не найдено.",
			keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "⬅️ К списку", Unique: cbFbList}}))
	}

	if err := a.feedback.MarkRead(ctx, id); err != nil {
		logger.Warn(ctx, "tg", "feedback.mark_read.fail",
			slog.Int64("feedback_id", id),
			slog.String("err", err.Error()),
		)
		_ = c.Respond(&tele.CallbackResponse{Text: writeFailedText, ShowAlert: true})
	} else if fb.Status == models.StatusNew {
		fb.Status = models.StatusRead
	}

	text, markup := feedbackCardScreen(fb)
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onFeedbackReply(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.onFeedbackListScreen(c)
	}

	fb, err := a.feedback.Get(ctx, id)
	if err != nil {
		return tghelpers.EditOrSendHTML(c, "Обращение не найдено.",
			keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "⬅️ К списку", Unique: cbFbList}}))
	}

	a.states.Set(c.Sender().ID, state.Pending{
		Kind:       state.KindFeedbackReply,
		FeedbackID: fb.ID,
		TargetChat: fb.UserID,
	})
	return tghelpers.EditOrSendHTML(c, "Введите ответ гостю:")
}

func (a *App) onFeedbackDelete(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.onFeedbackListScreen(c)
	}

	if err := a.feedback.Delete(ctx, id); err != nil && !isNotFound(err) {
		return tghelpers.EditOrSendHTML(c, writeFailedText,
			keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "⬅️ К списку", Unique: cbFbList}}))
	}
	return a.onFeedbackListScreen(c)
}
