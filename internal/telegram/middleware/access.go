package middleware

import (
	"context"

	"log/slog"

	"restobot/internal/logger"
	tghelpers "restobot/internal/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// AdminChecker answers whether a user belongs to the admin roster.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// AdminOptions defines how admin-only checks behave. When the roster
// lookup fails, FallbackID keeps the configured primary admin working.
type AdminOptions struct {
	Check      AdminChecker
	FallbackID int64
	OnReject   tele.HandlerFunc
}

// Allowed resolves the admin check for a single user.
func (opts AdminOptions) Allowed(ctx context.Context, userID int64) bool {
	if opts.Check != nil {
		ok, err := opts.Check.IsAdmin(ctx, userID)
		if err == nil {
			return ok || userID == opts.FallbackID
		}
		logger.Warn(ctx, "tg", "admin.check.fallback",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
	return opts.FallbackID != 0 && userID == opts.FallbackID
}

// WithAdminCheck wraps a handler enforcing admin-only execution when required.
func WithAdminCheck(opts AdminOptions, adminOnly bool, h tele.HandlerFunc) tele.HandlerFunc {
	if !adminOnly {
		return h
	}
	return AdminOnlyMiddleware(opts)(h)
}

// AdminOnlyMiddleware ensures that only roster admins can invoke downstream handlers.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			ctx := tghelpers.BuildContext(c)
			if !opts.Allowed(ctx, sender.ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
