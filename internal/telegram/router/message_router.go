package router

import (
	"time"

	tg "restobot/internal/telegram"
	"restobot/internal/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// PendingRouter reports whether the bot is waiting for input from a user.
type PendingRouter interface {
	InProgress(userID int64) bool
}

// MessageOptions controls routing of text and photo updates.
type MessageOptions struct {
	// PendingText handles a text message that answers an earlier prompt.
	PendingText tele.HandlerFunc
	// PendingPhoto handles a photo that answers an earlier prompt.
	PendingPhoto tele.HandlerFunc

	UnknownText  tele.HandlerFunc
	UnknownPhoto tele.HandlerFunc

	// Admin gates slash-less dispatch of admin-only commands the same
	// way CommandRoutes gates the slash form.
	Admin middleware.AdminOptions
}

// MessageRoutes builds handlers for text and photo routing. Pending input
// takes priority over command lookup so a prompted answer is never
// mistaken for a command.
func MessageRoutes(pending PendingRouter, reg *tg.Registry, opts MessageOptions) []tg.Route {
	textHandler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if pending != nil && opts.PendingText != nil && pending.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "pending_text", start, "", "", func() error {
				return opts.PendingText(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				h := middleware.WithAdminCheck(opts.Admin, cmd.AdminOnly, cmd.Handler)
				return handleWithSummary(c, name, start, "", "", func() error {
					return h(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	photoHandler := func(c tele.Context) error {
		start := time.Now()
		if pending != nil && opts.PendingPhoto != nil && pending.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "pending_photo", start, "", "", func() error {
				return opts.PendingPhoto(c)
			})
		}
		if opts.UnknownPhoto != nil {
			return handleWithSummary(c, "unexpected_photo", start, "", "", func() error {
				return opts.UnknownPhoto(c)
			})
		}
		logHandlerSummary(c, "unexpected_photo", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(textHandler)),
		},
		{
			Endpoint: tele.OnPhoto,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(photoHandler)),
		},
	}
}
