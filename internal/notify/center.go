// Package notify implements the transient toast queue: short-lived
// notifications with auto-dismissal and a fixed cap on how many are
// visible at once. The queue is volatile, in-memory state.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 3 * time.Second

// MaxVisible caps the number of concurrent toasts. Pushing beyond the cap
// evicts the oldest entries first: the most recent MaxVisible are visible.
const MaxVisible = 3

// Toast is one queued notification.
type Toast struct {
	ID       string
	Message  string
	Level    Level
	Duration time.Duration
}

// Center owns the toast queue. It is the only writer; consumers read
// snapshots via Toasts or Subscribe.
type Center struct {
	mu      sync.Mutex
	toasts  []Toast
	timers  map[string]*time.Timer
	subs    map[int]func([]Toast)
	nextSub int
}

// NewCenter creates an empty toast queue.
func NewCenter() *Center {
	return &Center{
		timers: make(map[string]*time.Timer),
		subs:   make(map[int]func([]Toast)),
	}
}

// Push enqueues a toast and schedules its auto-dismissal. A non-positive
// duration means DefaultDuration. Returns the toast id.
func (c *Center) Push(message string, level Level, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	toast := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Level:    level,
		Duration: duration,
	}

	c.mu.Lock()
	// Evict from the front until the newcomer fits.
	for len(c.toasts) >= MaxVisible {
		evicted := c.toasts[0]
		c.toasts = c.toasts[1:]
		c.stopTimerLocked(evicted.ID)
	}
	c.toasts = append(c.toasts, toast)
	c.timers[toast.ID] = time.AfterFunc(duration, func() {
		c.Dismiss(toast.ID)
	})
	c.mu.Unlock()

	c.broadcast()
	return toast.ID
}

// Info enqueues an informational toast with the default duration.
func (c *Center) Info(message string) string {
	return c.Push(message, LevelInfo, 0)
}

// Success enqueues a success toast with the default duration.
func (c *Center) Success(message string) string {
	return c.Push(message, LevelSuccess, 0)
}

// Error enqueues an error toast with the default duration.
func (c *Center) Error(message string) string {
	return c.Push(message, LevelError, 0)
}

// Warning enqueues a warning toast with the default duration.
func (c *Center) Warning(message string) string {
	return c.Push(message, LevelWarning, 0)
}

// Dismiss removes a toast and cancels its pending auto-dismissal.
// Idempotent: dismissing an unknown or already-removed id is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	found := false
	for i, toast := range c.toasts {
		if toast.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			found = true
			break
		}
	}
	c.stopTimerLocked(id)
	c.mu.Unlock()

	if found {
		c.broadcast()
	}
}

// Toasts returns the visible toasts in insertion order, newest last.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Subscribe registers a listener called with a snapshot after every queue
// change. Returns an unsubscribe function.
func (c *Center) Subscribe(fn func([]Toast)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// stopTimerLocked cancels and forgets a toast's timer. Caller holds c.mu.
func (c *Center) stopTimerLocked(id string) {
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
}

func (c *Center) broadcast() {
	snapshot := c.Toasts()

	c.mu.Lock()
	listeners := make([]func([]Toast), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
