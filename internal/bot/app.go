package bot

import (
	"context"

	"github.com/jmoiron/sqlx"

	"restobot/internal/service"
	"restobot/internal/storage"
	"restobot/internal/storage/postgres"
	"restobot/internal/sweeper"
	coretelegram "restobot/internal/telegram"
	"restobot/internal/telegram/commands"
	"restobot/internal/telegram/middleware"
	"restobot/internal/telegram/router"
	"restobot/internal/telegram/sender"
	"restobot/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// App wires the restaurant dialog handlers over the core runtime.
type App struct {
	cfg   *Config
	store storage.Store

	menu     *service.Menu
	sheets   *service.Sheets
	files    *service.Files
	admins   *service.Admins
	feedback *service.Feedback

	states state.Manager
	sweep  *sweeper.Sweeper

	// Set once by the OnStart hook before any update is processed.
	bot        *tele.Bot
	dispatcher *sender.Dispatcher
}

// New builds the application over an established database connection.
func New(cfg *Config, db *sqlx.DB) *App {
	store := postgres.New(db)
	feedback := service.NewFeedback(store)
	return &App{
		cfg:      cfg,
		store:    store,
		menu:     service.NewMenu(store),
		sheets:   service.NewSheets(store),
		files:    service.NewFiles(store),
		admins:   service.NewAdmins(store),
		feedback: feedback,
		states:   state.NewMemoryManager(),
		sweep:    sweeper.New(feedback, cfg.Core.Retention),
	}
}

func (a *App) adminOptions() middleware.AdminOptions {
	return middleware.AdminOptions{
		Check:      a.admins,
		FallbackID: a.cfg.Core.Telegram.AdminID,
		OnReject:   a.onDenied,
	}
}

// TelegramRunOptions assembles the registry, routes, and lifecycle hooks.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	adminOpts := a.adminOptions()

	a.registerCommands(reg)
	a.registerCallbacks(reg, adminOpts)
	reg.SetCallbackNotFound(a.onUnknownCallback)

	routes := []coretelegram.Route{
		router.CallbackRoute(reg, router.CallbackOptions{}),
	}
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{Admin: adminOpts})...)
	routes = append(routes, router.MessageRoutes(a.states, reg, router.MessageOptions{
		PendingText:  a.onPendingText,
		PendingPhoto: a.onPendingPhoto,
		UnknownPhoto: a.onStrayPhoto,
		Admin:        adminOpts,
	})...)

	return coretelegram.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(&a.cfg.Core, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			a.bot = rt.Bot
			a.dispatcher = rt.Dispatcher
			go a.sweep.Run(ctx)
			return nil
		},
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.store.Close()
		},
	}, nil
}

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.onStart,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/add_admin", commands.Command{
		Handler:     a.onAddAdmin,
		Description: "Добавить администратора",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/remove_admin", commands.Command{
		Handler:     a.onRemoveAdmin,
		Description: "Удалить администратора",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/list_admins", commands.Command{
		Handler:     a.onListAdmins,
		Description: "Список администраторов",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/feedback", commands.Command{
		Handler:     a.onFeedbackList,
		Description: "Обращения гостей",
		AdminOnly:   true,
	})
}

func (a *App) registerCallbacks(reg *coretelegram.Registry, adminOpts middleware.AdminOptions) {
	gated := func(h tele.HandlerFunc) tele.HandlerFunc {
		return middleware.WithAdminCheck(adminOpts, true, h)
	}

	_ = reg.RegisterCallback(cbMenu, a.onCategories)
	_ = reg.RegisterCallback(cbBackCategories, a.onCategories)
	_ = reg.RegisterCallback(cbBackMain, a.onMainMenu)
	_ = reg.RegisterCallback(cbCategory, a.onCategory)
	_ = reg.RegisterCallback(cbDish, a.onDish)

	_ = reg.RegisterCallback(cbSheet, a.onSheetOptions)
	_ = reg.RegisterCallback(cbSheetView, a.onSheetView)
	_ = reg.RegisterCallback(cbSheetSet, gated(a.onSheetSet))

	_ = reg.RegisterCallback(cbSchedule, a.onSchedule)
	_ = reg.RegisterCallback(cbSeating, a.onSeating)
	_ = reg.RegisterCallback(cbScheduleSet, gated(a.onScheduleSet))
	_ = reg.RegisterCallback(cbSeatingSet, gated(a.onSeatingSet))

	_ = reg.RegisterCallback(cbFeedback, a.onFeedbackEntry)
	_ = reg.RegisterCallback(cbFbCat, a.onFeedbackCategory)
	_ = reg.RegisterCallback(cbFbTable, a.onFeedbackTable)

	_ = reg.RegisterCallback(cbFbList, gated(a.onFeedbackListScreen))
	_ = reg.RegisterCallback(cbFbRead, gated(a.onFeedbackRead))
	_ = reg.RegisterCallback(cbFbReply, gated(a.onFeedbackReply))
	_ = reg.RegisterCallback(cbFbDel, gated(a.onFeedbackDelete))
}
