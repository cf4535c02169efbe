// Package scheduler orchestrates the reminder lifecycle: validated
// creation, listing, deletion, observer registration, and the background
// monitor that fires due reminders.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/agha-moutsim/reminder-agent/internal/notify"
	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/store"
)

// Creation errors surfaced to the caller. No partial state is persisted
// when any of them occur.
var (
	ErrPastDue               = errors.New("due time must be in the future")
	ErrInvalidRecurrenceKind = errors.New("invalid recurrence kind")
)

// Scheduler manages creation, listing and deletion of reminders and owns
// the notification registry. It is safe for concurrent use as long as the
// underlying store is.
type Scheduler struct {
	store    store.Store
	registry *notify.Registry
	now      func() time.Time
}

// New creates a Scheduler over the given store.
func New(st store.Store) *Scheduler {
	return &Scheduler{
		store:    st,
		registry: notify.NewRegistry(),
		now:      time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Registry exposes the notification registry, used by the monitor.
func (s *Scheduler) Registry() *notify.Registry {
	return s.registry
}

// CreateOneTime builds and persists a one-time reminder. The due time must
// be strictly in the future.
func (s *Scheduler) CreateOneTime(message string, dueAt time.Time) (reminder.Reminder, error) {
	if !dueAt.After(s.now()) {
		return reminder.Reminder{}, ErrPastDue
	}

	r, err := reminder.New(message, dueAt, reminder.KindOneTime, nil)
	if err != nil {
		return reminder.Reminder{}, err
	}

	if err := s.store.Save(r); err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to save reminder: %w", err)
	}
	return r, nil
}

// CreateRecurring builds and persists a recurring reminder. The start date
// may be in the past to represent an already-begun series; weekly, monthly
// and yearly kinds require a recurrence details payload.
func (s *Scheduler) CreateRecurring(message string, start time.Time, kind reminder.Kind, details map[string]any) (reminder.Reminder, error) {
	if !kind.Recurring() {
		return reminder.Reminder{}, fmt.Errorf("%w: %q (must be one of daily, weekly, monthly, yearly)", ErrInvalidRecurrenceKind, kind)
	}
	if kind.RequiresDetails() && details == nil {
		return reminder.Reminder{}, &reminder.ValidationError{Field: "recurrence_details", Err: reminder.ErrMissingRecurrenceDetails}
	}

	r, err := reminder.New(message, start, kind, details)
	if err != nil {
		return reminder.Reminder{}, err
	}

	if err := s.store.Save(r); err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to save reminder: %w", err)
	}
	return r, nil
}

// List returns stored reminders. With includePast false only reminders
// still in the future at call time are returned; the filter is live, not a
// stored flag. Order follows the store (the SQLite backend yields
// ascending scheduled time, the in-memory one is unordered).
func (s *Scheduler) List(includePast bool) ([]reminder.Reminder, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	if includePast {
		return all, nil
	}

	now := s.now()
	future := make([]reminder.Reminder, 0, len(all))
	for _, r := range all {
		if r.ScheduledTime.After(now) {
			future = append(future, r)
		}
	}
	return future, nil
}

// Get retrieves a single reminder by ID.
func (s *Scheduler) Get(id string) (reminder.Reminder, bool, error) {
	return s.store.Get(id)
}

// Delete removes a reminder by ID. It is idempotent: deleting an unknown
// ID returns false without error.
func (s *Scheduler) Delete(id string) (bool, error) {
	return s.store.Delete(id)
}

// RegisterObserver adds an observer to be invoked when reminders fire.
func (s *Scheduler) RegisterObserver(o notify.Observer) {
	s.registry.Register(o)
}

// UnregisterObserver removes a previously registered observer.
func (s *Scheduler) UnregisterObserver(o notify.Observer) {
	s.registry.Unregister(o)
}
