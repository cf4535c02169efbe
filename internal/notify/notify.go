// Package notify implements the observer registry that fans a due
// reminder out to every interested party.
package notify

import (
	"log"
	"sync"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

// Observer receives a reminder when it becomes due. Observers are
// registered and removed by identity, so implementations should be
// pointers.
type Observer interface {
	Notify(r reminder.Reminder)
}

type observerFunc struct {
	fn func(reminder.Reminder)
}

func (o *observerFunc) Notify(r reminder.Reminder) {
	o.fn(r)
}

// Func wraps a plain function as an Observer. Each call returns a distinct
// handle; keep the returned value to unregister it later.
func Func(fn func(reminder.Reminder)) Observer {
	return &observerFunc{fn: fn}
}

// Registry holds registered observers and dispatches due reminders to them
// in registration order. All methods are safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	observers []Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an observer. Registering the same observer twice is a
// no-op.
func (g *Registry) Register(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, existing := range g.observers {
		if existing == o {
			return
		}
	}
	g.observers = append(g.observers, o)
}

// Unregister removes a previously registered observer; unknown observers
// are ignored.
func (g *Registry) Unregister(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, existing := range g.observers {
		if existing == o {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return
		}
	}
}

// HasObservers reports whether any observer is registered.
func (g *Registry) HasObservers() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.observers) > 0
}

// Dispatch invokes every observer with the reminder, in registration
// order. A panicking observer is logged and skipped; the rest still run.
// Dispatch never fails.
func (g *Registry) Dispatch(r reminder.Reminder) {
	g.mu.Lock()
	snapshot := make([]Observer, len(g.observers))
	copy(snapshot, g.observers)
	g.mu.Unlock()

	for _, o := range snapshot {
		dispatchOne(o, r)
	}
}

func dispatchOne(o Observer, r reminder.Reminder) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[notify] Error: observer failed for reminder %s: %v", r.ShortID(), rec)
		}
	}()
	o.Notify(r)
}
