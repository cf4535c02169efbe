package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

// SQLite is a Store backed by a SQLite database file. Timestamps are
// stored as RFC3339 TEXT in UTC; recurrence details as a JSON TEXT column.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath and ensures the
// reminders table exists.
func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Err: err}
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id                 TEXT PRIMARY KEY,
			message            TEXT NOT NULL,
			scheduled_time     TEXT NOT NULL,
			kind               TEXT NOT NULL,
			recurrence_details TEXT NOT NULL DEFAULT '',
			created_at         TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Err: err}
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Save(r reminder.Reminder) error {
	details := ""
	if r.RecurrenceDetails != nil {
		b, err := json.Marshal(r.RecurrenceDetails)
		if err != nil {
			return &StoreError{Op: "save", Err: err}
		}
		details = string(b)
	}

	_, err := s.db.Exec(`
		INSERT INTO reminders (id, message, scheduled_time, kind, recurrence_details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			message = excluded.message,
			scheduled_time = excluded.scheduled_time,
			kind = excluded.kind,
			recurrence_details = excluded.recurrence_details
	`, r.ID, r.Message, r.ScheduledTime.UTC().Format(time.RFC3339), string(r.Kind),
		details, r.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func (s *SQLite) Get(id string) (reminder.Reminder, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, message, scheduled_time, kind, recurrence_details, created_at
		FROM reminders WHERE id = ?
	`, id)

	r, err := scanReminder(row.Scan)
	if err == sql.ErrNoRows {
		return reminder.Reminder{}, false, nil
	}
	if err != nil {
		return reminder.Reminder{}, false, &StoreError{Op: "get", Err: err}
	}
	return r, true, nil
}

func (s *SQLite) List() ([]reminder.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, message, scheduled_time, kind, recurrence_details, created_at
		FROM reminders ORDER BY scheduled_time ASC
	`)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	var out []reminder.Reminder
	for rows.Next() {
		r, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return out, nil
}

func (s *SQLite) Delete(id string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return false, &StoreError{Op: "delete", Err: err}
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

func scanReminder(scan func(...any) error) (reminder.Reminder, error) {
	var r reminder.Reminder
	var scheduled, details, created string

	if err := scan(&r.ID, &r.Message, &scheduled, (*string)(&r.Kind), &details, &created); err != nil {
		return reminder.Reminder{}, err
	}

	var err error
	if r.ScheduledTime, err = time.Parse(time.RFC3339, scheduled); err != nil {
		return reminder.Reminder{}, err
	}
	r.ScheduledTime = r.ScheduledTime.UTC()
	if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return reminder.Reminder{}, err
	}
	r.CreatedAt = r.CreatedAt.UTC()

	if details != "" {
		if err := json.Unmarshal([]byte(details), &r.RecurrenceDetails); err != nil {
			return reminder.Reminder{}, err
		}
	}
	return r, nil
}
