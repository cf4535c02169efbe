package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agha-moutsim/reminder-agent/internal/notify"
	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

func TestSweepRetiresOneTime(t *testing.T) {
	s, st := newTestScheduler()

	due, err := reminder.New("due now", now.Add(-time.Minute), reminder.KindOneTime, nil)
	require.NoError(t, err)
	require.NoError(t, st.Save(due))

	var fired []string
	s.RegisterObserver(notify.Func(func(r reminder.Reminder) {
		fired = append(fired, r.ID)
	}))

	m := NewMonitor(s, DefaultInterval)
	m.sweep(now)

	assert.Equal(t, []string{due.ID}, fired, "dispatched exactly once")

	_, found, err := st.Get(due.ID)
	require.NoError(t, err)
	assert.False(t, found, "one-time reminder is removed after firing")

	// The next sweep finds nothing.
	m.sweep(now.Add(time.Minute))
	assert.Len(t, fired, 1)
}

func TestSweepKeepsRecurring(t *testing.T) {
	s, st := newTestScheduler()

	daily, err := reminder.New("standup", now.Add(-time.Minute), reminder.KindDaily, nil)
	require.NoError(t, err)
	require.NoError(t, st.Save(daily))

	fired := 0
	s.RegisterObserver(notify.Func(func(reminder.Reminder) { fired++ }))

	m := NewMonitor(s, DefaultInterval)
	m.sweep(now)
	m.sweep(now.Add(time.Minute))

	// Recurring reminders re-fire on every sweep until deleted.
	assert.Equal(t, 2, fired)

	_, found, err := st.Get(daily.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSweepIgnoresFuture(t *testing.T) {
	s, _ := newTestScheduler()

	_, err := s.CreateOneTime("later", now.Add(time.Hour))
	require.NoError(t, err)

	fired := 0
	s.RegisterObserver(notify.Func(func(reminder.Reminder) { fired++ }))

	m := NewMonitor(s, DefaultInterval)
	m.sweep(now)
	assert.Zero(t, fired)
}

func TestSweepObserverFailureDoesNotBlockRetirement(t *testing.T) {
	s, st := newTestScheduler()

	due, err := reminder.New("due", now.Add(-time.Minute), reminder.KindOneTime, nil)
	require.NoError(t, err)
	require.NoError(t, st.Save(due))

	s.RegisterObserver(notify.Func(func(reminder.Reminder) { panic("broken observer") }))

	m := NewMonitor(s, DefaultInterval)
	assert.NotPanics(t, func() { m.sweep(now) })

	_, found, err := st.Get(due.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRunRejectsNonPositiveInterval(t *testing.T) {
	s, _ := newTestScheduler()
	m := NewMonitor(s, 0)

	err := m.Run(context.Background())
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newTestScheduler()
	m := NewMonitor(s, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}
}
