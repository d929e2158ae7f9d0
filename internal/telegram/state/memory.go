package state

import "sync"

type memoryManager struct {
	mu      sync.RWMutex
	pending map[int64]Pending
}

// NewMemoryManager constructs an in-memory Manager implementation.
// Pending input does not survive a restart, matching the conversational
// character of the data it holds.
func NewMemoryManager() Manager {
	return &memoryManager{
		pending: make(map[int64]Pending),
	}
}

// Set replaces the awaited input for a user. A Pending with KindNone
// is equivalent to Clear.
func (m *memoryManager) Set(userID int64, p Pending) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.Kind == KindNone {
		delete(m.pending, userID)
		return
	}
	m.pending[userID] = p
}

// Get returns the awaited input for a user, if any.
func (m *memoryManager) Get(userID int64) (Pending, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pending[userID]
	return p, ok
}

// Clear removes any awaited input for a user.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, userID)
}

// InProgress reports whether the bot is currently waiting for input from the user.
func (m *memoryManager) InProgress(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pending[userID]
	return ok
}
