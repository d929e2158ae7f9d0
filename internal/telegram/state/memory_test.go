package state

import (
	"testing"

	"restobot/internal/models"
)

func TestMemoryManagerReplacesPending(t *testing.T) {
	m := NewMemoryManager()
	const userID = int64(100)

	if m.InProgress(userID) {
		t.Fatal("fresh manager should have no pending input")
	}

	m.Set(userID, Pending{Kind: KindSheetText, Sheet: models.SheetGo})
	m.Set(userID, Pending{Kind: KindFeedbackText, Table: 5, Category: models.CategoryComplaint})

	p, ok := m.Get(userID)
	if !ok {
		t.Fatal("expected pending input")
	}
	if p.Kind != KindFeedbackText || p.Table != 5 || p.Category != models.CategoryComplaint {
		t.Fatalf("unexpected pending: %+v", p)
	}
}

func TestMemoryManagerClear(t *testing.T) {
	m := NewMemoryManager()
	const userID = int64(200)

	m.Set(userID, Pending{Kind: KindSchedulePhoto})
	if !m.InProgress(userID) {
		t.Fatal("expected pending input after Set")
	}

	m.Clear(userID)
	if m.InProgress(userID) {
		t.Fatal("expected no pending input after Clear")
	}
	if _, ok := m.Get(userID); ok {
		t.Fatal("Get should miss after Clear")
	}
}

func TestMemoryManagerSetNoneClears(t *testing.T) {
	m := NewMemoryManager()
	const userID = int64(300)

	m.Set(userID, Pending{Kind: KindFeedbackReply, FeedbackID: 7, TargetChat: 42})
	m.Set(userID, Pending{Kind: KindNone})

	if m.InProgress(userID) {
		t.Fatal("KindNone should clear pending input")
	}
}

func TestMemoryManagerIsolatedPerUser(t *testing.T) {
	m := NewMemoryManager()

	m.Set(1, Pending{Kind: KindSeatingPhoto})
	m.Set(2, Pending{Kind: KindSheetText, Sheet: models.SheetStart})

	m.Clear(1)
	if m.InProgress(1) {
		t.Fatal("user 1 should be cleared")
	}
	p, ok := m.Get(2)
	if !ok || p.Kind != KindSheetText || p.Sheet != models.SheetStart {
		t.Fatalf("user 2 pending lost: %+v ok=%v", p, ok)
	}
}
