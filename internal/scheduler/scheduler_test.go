package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/store"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestScheduler() (*Scheduler, *store.Memory) {
	st := store.NewMemory()
	s := New(st).WithClock(func() time.Time { return now })
	return s, st
}

func TestCreateOneTime(t *testing.T) {
	s, st := newTestScheduler()

	r, err := s.CreateOneTime("buy milk", now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, reminder.KindOneTime, r.Kind)
	assert.Equal(t, "buy milk", r.Message)

	_, found, err := st.Get(r.ID)
	require.NoError(t, err)
	assert.True(t, found, "created reminder must be persisted")
}

func TestCreateOneTimePastDue(t *testing.T) {
	s, st := newTestScheduler()

	_, err := s.CreateOneTime("too late", now.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrPastDue)

	// Exactly now is not strictly in the future either.
	_, err = s.CreateOneTime("right now", now)
	assert.ErrorIs(t, err, ErrPastDue)

	all, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, all, "rejected creation must leave the store unchanged")
}

func TestCreateOneTimeValidation(t *testing.T) {
	s, _ := newTestScheduler()

	_, err := s.CreateOneTime("", now.Add(time.Hour))
	assert.ErrorIs(t, err, reminder.ErrEmptyMessage)

	_, err = s.CreateOneTime("m", now.Add(time.Hour).In(time.FixedZone("UTC+2", 2*3600)))
	assert.ErrorIs(t, err, reminder.ErrNotUTC)
}

func TestCreateRecurring(t *testing.T) {
	s, _ := newTestScheduler()

	r, err := s.CreateRecurring("standup", now.Add(time.Hour), reminder.KindDaily, nil)
	require.NoError(t, err)
	assert.Equal(t, reminder.KindDaily, r.Kind)

	r, err = s.CreateRecurring("review", now.Add(time.Hour), reminder.KindWeekly, map[string]any{"day_of_week": "monday"})
	require.NoError(t, err)
	assert.Equal(t, reminder.KindWeekly, r.Kind)
}

func TestCreateRecurringPastStartAllowed(t *testing.T) {
	s, _ := newTestScheduler()

	// An already-begun series may start in the past.
	_, err := s.CreateRecurring("standup", now.Add(-24*time.Hour), reminder.KindDaily, nil)
	assert.NoError(t, err)
}

func TestCreateRecurringInvalidKind(t *testing.T) {
	s, st := newTestScheduler()

	_, err := s.CreateRecurring("m", now.Add(time.Hour), reminder.KindOneTime, nil)
	assert.ErrorIs(t, err, ErrInvalidRecurrenceKind)

	_, err = s.CreateRecurring("m", now.Add(time.Hour), reminder.Kind("hourly"), nil)
	assert.ErrorIs(t, err, ErrInvalidRecurrenceKind)

	all, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateRecurringMissingDetails(t *testing.T) {
	s, _ := newTestScheduler()

	for _, kind := range []reminder.Kind{reminder.KindWeekly, reminder.KindMonthly, reminder.KindYearly} {
		_, err := s.CreateRecurring("m", now.Add(time.Hour), kind, nil)
		assert.ErrorIs(t, err, reminder.ErrMissingRecurrenceDetails, "kind %s", kind)
	}
}

func TestListFiltersPast(t *testing.T) {
	s, st := newTestScheduler()

	futureR, err := s.CreateOneTime("future", now.Add(time.Hour))
	require.NoError(t, err)

	// A past-due reminder enters through the store directly, bypassing the
	// creation guard (the monitor sees these between ticks).
	pastR, err := reminder.New("past", now.Add(-time.Hour), reminder.KindOneTime, nil)
	require.NoError(t, err)
	require.NoError(t, st.Save(pastR))

	futureOnly, err := s.List(false)
	require.NoError(t, err)
	require.Len(t, futureOnly, 1)
	assert.Equal(t, futureR.ID, futureOnly[0].ID)

	all, err := s.List(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGet(t *testing.T) {
	s, _ := newTestScheduler()

	r, err := s.CreateOneTime("m", now.Add(time.Hour))
	require.NoError(t, err)

	got, found, err := s.Get(r.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, r.ID, got.ID)

	_, found, err = s.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteIdempotent(t *testing.T) {
	s, _ := newTestScheduler()

	r, err := s.CreateOneTime("m", now.Add(time.Hour))
	require.NoError(t, err)

	deleted, err := s.Delete(r.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(r.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
