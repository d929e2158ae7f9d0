package router

import (
	"context"
	"testing"

	tg "restobot/internal/telegram"
	"restobot/internal/telegram/commands"
	"restobot/internal/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

type rosterStub struct {
	admins map[int64]bool
}

func (s rosterStub) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return s.admins[userID], nil
}

// textContext carries just enough of tele.Context for the OnText path.
type textContext struct {
	tele.Context

	update tele.Update
	sender *tele.User
	text   string
	store  map[string]interface{}
}

func newTextContext(userID int64, text string) *textContext {
	return &textContext{
		update: tele.Update{ID: 1},
		sender: &tele.User{ID: userID},
		text:   text,
		store:  make(map[string]interface{}),
	}
}

func (c *textContext) Update() tele.Update { return c.update }
func (c *textContext) Sender() *tele.User  { return c.sender }
func (c *textContext) Chat() *tele.Chat    { return nil }
func (c *textContext) Text() string        { return c.text }

func (c *textContext) Get(key string) interface{} { return c.store[key] }

func (c *textContext) Set(key string, val interface{}) { c.store[key] = val }

func textRoute(t *testing.T, reg *tg.Registry, admin middleware.AdminOptions) tele.HandlerFunc {
	t.Helper()
	for _, r := range MessageRoutes(nil, reg, MessageOptions{Admin: admin}) {
		if r.Endpoint == tele.OnText {
			return r.Handler
		}
	}
	t.Fatal("no OnText route")
	return nil
}

func TestTextDispatchDeniesAdminCommandForGuest(t *testing.T) {
	reg := tg.NewRegistry()
	called := false
	reg.RegisterCommand("/feedback", commands.Command{
		Handler:     func(tele.Context) error { called = true; return nil },
		Description: "Обращения гостей",
		AdminOnly:   true,
	})

	denied := false
	admin := middleware.AdminOptions{
		Check:    rosterStub{admins: map[int64]bool{}},
		OnReject: func(tele.Context) error { denied = true; return nil },
	}

	h := textRoute(t, reg, admin)
	if err := h(newTextContext(424242, "feedback")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if called {
		t.Fatal("admin-only handler ran for a non-admin sent as plain text")
	}
	if !denied {
		t.Fatal("reject handler not invoked")
	}
}

func TestTextDispatchRunsAdminCommandForRosterAdmin(t *testing.T) {
	reg := tg.NewRegistry()
	called := false
	reg.RegisterCommand("/list_admins", commands.Command{
		Handler:     func(tele.Context) error { called = true; return nil },
		Description: "Список администраторов",
		AdminOnly:   true,
	})

	admin := middleware.AdminOptions{
		Check: rosterStub{admins: map[int64]bool{99: true}},
	}

	h := textRoute(t, reg, admin)
	if err := h(newTextContext(99, "list_admins")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatal("roster admin was denied")
	}
}

func TestTextDispatchOpenCommandNeedsNoRoster(t *testing.T) {
	reg := tg.NewRegistry()
	called := false
	reg.RegisterCommand("/start", commands.Command{
		Handler:     func(tele.Context) error { called = true; return nil },
		Description: "Главное меню",
	})

	h := textRoute(t, reg, middleware.AdminOptions{Check: rosterStub{admins: map[int64]bool{}}})
	if err := h(newTextContext(424242, "start")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatal("open command did not run")
	}
}
