package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newTestSQLite(t)

	r, err := reminder.New("team sync",
		time.Date(2030, time.June, 1, 9, 30, 0, 0, time.UTC),
		reminder.KindWeekly, map[string]any{"day_of_week": "monday"})
	require.NoError(t, err)

	require.NoError(t, s.Save(r))

	got, found, err := s.Get(r.ID)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Message, got.Message)
	assert.True(t, r.ScheduledTime.Equal(got.ScheduledTime))
	assert.Equal(t, reminder.KindWeekly, got.Kind)
	assert.Equal(t, "monday", got.RecurrenceDetails["day_of_week"])
}

func TestSQLiteGetMissing(t *testing.T) {
	s := newTestSQLite(t)

	_, found, err := s.Get("nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteSaveUpserts(t *testing.T) {
	s := newTestSQLite(t)

	r, err := reminder.New("before",
		time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC),
		reminder.KindOneTime, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(r))

	r.Message = "after"
	require.NoError(t, s.Save(r))

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "after", all[0].Message)
}

func TestSQLiteListOrdersByScheduledTime(t *testing.T) {
	s := newTestSQLite(t)

	later, err := reminder.New("later",
		time.Date(2030, time.June, 2, 9, 0, 0, 0, time.UTC),
		reminder.KindOneTime, nil)
	require.NoError(t, err)
	earlier, err := reminder.New("earlier",
		time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC),
		reminder.KindOneTime, nil)
	require.NoError(t, err)

	require.NoError(t, s.Save(later))
	require.NoError(t, s.Save(earlier))

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "earlier", all[0].Message)
	assert.Equal(t, "later", all[1].Message)
}

func TestSQLiteDeleteIdempotent(t *testing.T) {
	s := newTestSQLite(t)

	r, err := reminder.New("m",
		time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC),
		reminder.KindOneTime, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(r))

	deleted, err := s.Delete(r.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(r.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
