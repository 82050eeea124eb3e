// Package notify keeps the transient, self-expiring messages shown to the
// customer while they fill in the form.
package notify

import (
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center holds the notifications of one session. Each entry expires on its
// own; expired entries are dropped lazily on the next read or write.
//
// A Center is not safe for concurrent use; it belongs to a single session.
type Center struct {
	ttl     time.Duration
	now     func() time.Time
	entries []Notification
}

func NewCenter(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Center{ttl: ttl, now: now}
}

// Push records a notification and returns it.
func (c *Center) Push(level Level, message string) Notification {
	c.prune()
	created := c.now().UTC()
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: created,
		ExpiresAt: created.Add(c.ttl),
	}
	c.entries = append(c.entries, n)
	return n
}

// Active returns the notifications that have not expired, oldest first.
func (c *Center) Active() []Notification {
	c.prune()
	out := make([]Notification, len(c.entries))
	copy(out, c.entries)
	return out
}

// Dismiss removes a notification before it expires. It reports whether the
// notification was still active.
func (c *Center) Dismiss(id string) bool {
	c.prune()
	for i, n := range c.entries {
		if n.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) prune() {
	now := c.now().UTC()
	kept := c.entries[:0]
	for _, n := range c.entries {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	c.entries = kept
}
