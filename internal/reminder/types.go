package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies how a reminder repeats.
type Kind string

// The closed set of reminder kinds. The string values double as the
// user-facing recurrence names accepted by the agent and the MCP tools.
const (
	KindOneTime Kind = "one-time"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindOneTime, KindDaily, KindWeekly, KindMonthly, KindYearly:
		return true
	}
	return false
}

// Recurring reports whether k repeats (anything but one-time).
func (k Kind) Recurring() bool {
	return k.Valid() && k != KindOneTime
}

// RequiresDetails reports whether the kind needs a recurrence details
// payload at construction time. Daily repeats carry everything they need
// in the scheduled time itself.
func (k Kind) RequiresDetails() bool {
	switch k {
	case KindWeekly, KindMonthly, KindYearly:
		return true
	}
	return false
}

// Reminder is a single scheduled notification. It is treated as immutable
// after construction; an update is a full overwrite keyed by the same ID.
type Reminder struct {
	ID                string         `json:"id"`
	Message           string         `json:"message"`
	ScheduledTime     time.Time      `json:"scheduled_time"`
	Kind              Kind           `json:"kind"`
	RecurrenceDetails map[string]any `json:"recurrence_details,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// New builds a validated Reminder with a fresh ID. scheduledTime must carry
// explicit UTC semantics; details are required for weekly, monthly and
// yearly kinds.
func New(message string, scheduledTime time.Time, kind Kind, details map[string]any) (Reminder, error) {
	if message == "" {
		return Reminder{}, &ValidationError{Field: "message", Err: ErrEmptyMessage}
	}
	if scheduledTime.IsZero() {
		return Reminder{}, &ValidationError{Field: "scheduled_time", Err: ErrZeroTime}
	}
	if scheduledTime.Location() != time.UTC {
		return Reminder{}, &ValidationError{Field: "scheduled_time", Err: ErrNotUTC}
	}
	if !kind.Valid() {
		return Reminder{}, &ValidationError{Field: "kind", Err: ErrInvalidKind}
	}
	if kind.RequiresDetails() && details == nil {
		return Reminder{}, &ValidationError{Field: "recurrence_details", Err: ErrMissingRecurrenceDetails}
	}

	return Reminder{
		ID:                uuid.NewString(),
		Message:           message,
		ScheduledTime:     scheduledTime,
		Kind:              kind,
		RecurrenceDetails: details,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// Due reports whether the reminder is due at the given instant.
func (r Reminder) Due(now time.Time) bool {
	return !r.ScheduledTime.After(now)
}

// ShortID returns the first 8 characters of the ID for display.
func (r Reminder) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}
