package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var future = time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a, err := New("first", future, KindOneTime, nil)
	require.NoError(t, err)
	b, err := New("second", future, KindOneTime, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		at      time.Time
		kind    Kind
		details map[string]any
		wantErr error
	}{
		{"empty message", "", future, KindOneTime, nil, ErrEmptyMessage},
		{"zero time", "m", time.Time{}, KindOneTime, nil, ErrZeroTime},
		{"non-UTC time", "m", future.In(time.FixedZone("UTC+3", 3*3600)), KindOneTime, nil, ErrNotUTC},
		{"unknown kind", "m", future, Kind("hourly"), nil, ErrInvalidKind},
		{"weekly without details", "m", future, KindWeekly, nil, ErrMissingRecurrenceDetails},
		{"monthly without details", "m", future, KindMonthly, nil, ErrMissingRecurrenceDetails},
		{"yearly without details", "m", future, KindYearly, nil, ErrMissingRecurrenceDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.message, tt.at, tt.kind, tt.details)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestNewDailyNeedsNoDetails(t *testing.T) {
	r, err := New("standup", future, KindDaily, nil)
	require.NoError(t, err)
	assert.Equal(t, KindDaily, r.Kind)
	assert.Nil(t, r.RecurrenceDetails)
}

func TestNewWeeklyWithDetails(t *testing.T) {
	r, err := New("review", future, KindWeekly, map[string]any{"day_of_week": "monday"})
	require.NoError(t, err)
	assert.Equal(t, KindWeekly, r.Kind)
	assert.Equal(t, "monday", r.RecurrenceDetails["day_of_week"])
}

func TestDue(t *testing.T) {
	r, err := New("m", future, KindOneTime, nil)
	require.NoError(t, err)

	assert.False(t, r.Due(future.Add(-time.Second)))
	assert.True(t, r.Due(future))
	assert.True(t, r.Due(future.Add(time.Second)))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, KindOneTime.Valid())
	assert.False(t, KindOneTime.Recurring())
	assert.False(t, KindOneTime.RequiresDetails())

	assert.True(t, KindDaily.Recurring())
	assert.False(t, KindDaily.RequiresDetails())

	for _, k := range []Kind{KindWeekly, KindMonthly, KindYearly} {
		assert.True(t, k.Recurring())
		assert.True(t, k.RequiresDetails())
	}

	assert.False(t, Kind("hourly").Valid())
	assert.False(t, Kind("hourly").Recurring())
}

func TestShortID(t *testing.T) {
	r, err := New("m", future, KindOneTime, nil)
	require.NoError(t, err)
	assert.Len(t, r.ShortID(), 8)
}
