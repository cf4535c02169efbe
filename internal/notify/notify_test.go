package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

func testReminder(t *testing.T) reminder.Reminder {
	t.Helper()
	r, err := reminder.New("test", time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC), reminder.KindOneTime, nil)
	require.NoError(t, err)
	return r
}

func TestRegisterDeduplicates(t *testing.T) {
	reg := NewRegistry()

	calls := 0
	o := Func(func(reminder.Reminder) { calls++ })

	reg.Register(o)
	reg.Register(o)

	reg.Dispatch(testReminder(t))
	assert.Equal(t, 1, calls)
}

func TestDispatchOrder(t *testing.T) {
	reg := NewRegistry()

	var order []string
	reg.Register(Func(func(reminder.Reminder) { order = append(order, "first") }))
	reg.Register(Func(func(reminder.Reminder) { order = append(order, "second") }))
	reg.Register(Func(func(reminder.Reminder) { order = append(order, "third") }))

	reg.Dispatch(testReminder(t))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestDispatchIsolatesFailures(t *testing.T) {
	reg := NewRegistry()

	secondCalled := false
	reg.Register(Func(func(reminder.Reminder) { panic("observer blew up") }))
	reg.Register(Func(func(reminder.Reminder) { secondCalled = true }))

	assert.NotPanics(t, func() { reg.Dispatch(testReminder(t)) })
	assert.True(t, secondCalled)
}

func TestUnregister(t *testing.T) {
	reg := NewRegistry()

	calls := 0
	o := Func(func(reminder.Reminder) { calls++ })

	reg.Register(o)
	require.True(t, reg.HasObservers())

	reg.Unregister(o)
	assert.False(t, reg.HasObservers())

	reg.Dispatch(testReminder(t))
	assert.Equal(t, 0, calls)

	// Unregistering an unknown observer is a no-op.
	reg.Unregister(Func(func(reminder.Reminder) {}))
}

func TestFuncHandlesAreDistinct(t *testing.T) {
	reg := NewRegistry()

	fn := func(reminder.Reminder) {}
	a := Func(fn)
	b := Func(fn)

	reg.Register(a)
	reg.Register(b)

	// Same underlying function, but two distinct handles.
	var count int
	reg.mu.Lock()
	count = len(reg.observers)
	reg.mu.Unlock()
	assert.Equal(t, 2, count)
}
