// Package store defines the persistence capability the reminder core
// depends on, plus the in-process implementations shipped with the agent.
package store

import "github.com/agha-moutsim/reminder-agent/internal/reminder"

// Store is the abstract persistence capability for reminders. Save is an
// upsert keyed by the reminder ID. Implementations must be safe for
// concurrent use: the foreground command path and the background alert
// monitor share a single instance.
type Store interface {
	Save(r reminder.Reminder) error
	Get(id string) (reminder.Reminder, bool, error)
	List() ([]reminder.Reminder, error)
	Delete(id string) (bool, error)
}
