package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DefaultInterval is how often the monitor polls for due reminders.
const DefaultInterval = 5 * time.Second

// Monitor is the background poller that detects due reminders, dispatches
// them to the registry, and retires fired one-time reminders. Recurring
// reminders are deliberately left in place and will fire again on every
// sweep until deleted; computing the next occurrence is a pending product
// decision.
type Monitor struct {
	scheduler *Scheduler
	interval  time.Duration
}

// NewMonitor creates a monitor over the scheduler with the given polling
// interval.
func NewMonitor(s *Scheduler, interval time.Duration) *Monitor {
	return &Monitor{scheduler: s, interval: interval}
}

// Run blocks and sweeps on interval, starting with an immediate sweep.
// It exits when ctx is cancelled; cancellation is observed between sweeps,
// never mid-dispatch.
func (m *Monitor) Run(ctx context.Context) error {
	if m.interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got %s", m.interval)
	}

	log.Printf("[monitor] Started. Interval: %s", m.interval)

	m.sweep(m.scheduler.now())

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[monitor] Shutting down...")
			return nil
		case <-ticker.C:
			m.sweep(m.scheduler.now())
		}
	}
}

// sweep reads every stored reminder and fires the due ones. A store
// failure is logged and treated as nothing due; the next sweep re-reads
// current state.
func (m *Monitor) sweep(now time.Time) {
	all, err := m.scheduler.List(true)
	if err != nil {
		log.Printf("[monitor] Error: failed to read reminders: %v", err)
		return
	}

	for _, r := range all {
		if !r.Due(now) {
			continue
		}

		m.scheduler.Registry().Dispatch(r)

		if r.Kind.Recurring() {
			continue
		}
		if _, err := m.scheduler.Delete(r.ID); err != nil {
			log.Printf("[monitor] Error: failed to retire reminder %s: %v", r.ShortID(), err)
		}
	}
}
