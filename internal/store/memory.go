package store

import (
	"sync"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

// Memory is a mutex-guarded in-memory Store. Reminders do not survive a
// restart; it is the default backend and the one used in tests.
type Memory struct {
	mu        sync.RWMutex
	reminders map[string]reminder.Reminder
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{reminders: make(map[string]reminder.Reminder)}
}

func (m *Memory) Save(r reminder.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders[r.ID] = r
	return nil
}

func (m *Memory) Get(id string) (reminder.Reminder, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reminders[id]
	return r, ok, nil
}

func (m *Memory) List() ([]reminder.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]reminder.Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		out = append(out, r)
	}
	return out, nil
}

func (m *Memory) Delete(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[id]; !ok {
		return false, nil
	}
	delete(m.reminders, id)
	return true, nil
}
