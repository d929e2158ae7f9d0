package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"restobot/internal/models"
	"restobot/internal/service"
	"restobot/internal/storage/stubs"
	"restobot/internal/telegram/state"
)

// cardContext carries just enough of tele.Context for callback handlers.
type cardContext struct {
	tele.Context

	cb     *tele.Callback
	sender *tele.User
	store  map[string]interface{}

	responses []*tele.CallbackResponse
	rendered  []string
}

func newCardContext(userID int64, unique, data string) *cardContext {
	return &cardContext{
		cb:     &tele.Callback{Unique: unique, Data: "\\f" + unique + "|" + data},
		sender: &tele.User{ID: userID},
		store:  make(map[string]interface{}),
	}
}

func (c *cardContext) Update() tele.Update { return tele.Update{ID: 7, Callback: c.cb} }

func (c *cardContext) Callback() *tele.Callback { return c.cb }

func (c *cardContext) Sender() *tele.User { return c.sender }

func (c *cardContext) Chat() *tele.Chat { return nil }

func (c *cardContext) Get(key string) interface{} { return c.store[key] }

func (c *cardContext) Set(key string, val interface{}) { c.store[key] = val }

func (c *cardContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func (c *cardContext) EditOrSend(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.rendered = append(c.rendered, s)
	}
	return nil
}

func newFeedbackApp(store *stubs.MemoryStore) *App {
	return &App{
		cfg:      &Config{},
		feedback: service.NewFeedback(store),
		states:   state.NewMemoryManager(),
	}
}

func seedCard(t *testing.T, store *stubs.MemoryStore) int64 {
	t.Helper()
	id, err := store.CreateFeedback(context.Background(), models.Feedback{
		UserID:      1001,
		FullName:    "Гость",
		Message:     "Очень вкусно",
		TableNumber: 12,
		Category:    models.CategoryFeedback,
		Status:      models.StatusNew,
	})
	require.NoError(t, err)
	return id
}

func TestFeedbackReadRendersCardAsRead(t *testing.T) {
	store := stubs.NewMemoryStore()
	id := seedCard(t, store)
	app := newFeedbackApp(store)

	c := newCardContext(99, cbFbRead, "1")
	require.NoError(t, app.onFeedbackRead(c))

	require.Len(t, c.rendered, 1)
	assert.Contains(t, c.rendered[0], "Обращение #1")
	assert.Empty(t, c.responses)

	fb, err := store.Feedback(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRead, fb.Status)
}

func TestFeedbackReadSurfacesMarkReadFailure(t *testing.T) {
	store := stubs.NewMemoryStore()
	seedCard(t, store)
	app := newFeedbackApp(store)

	store.FailWrites = errors.New("connection reset")

	c := newCardContext(99, cbFbRead, "1")
	require.NoError(t, app.onFeedbackRead(c))

	require.Len(t, c.responses, 1)
	assert.Equal(t, writeFailedText, c.responses[0].Text)
	assert.True(t, c.responses[0].ShowAlert)

	// The card still renders, with the stored status untouched.
	require.Len(t, c.rendered, 1)
	assert.Contains(t, c.rendered[0], "Обращение #1")

	store.FailWrites = nil
	fb, err := store.Feedback(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, fb.Status)
}
