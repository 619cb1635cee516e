// Package notify implements the toast surface the presentation layer
// consumes: short human-readable messages with a severity, displayed for
// a fixed duration and then dismissed.  The core pushes a notice for
// every booking outcome; a renderer polls Active and draws whatever is
// still alive.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notice for presentation purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is one displayable message.  ExpiresAt is when the renderer
// should stop showing it.
type Notice struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center collects notices and expires them after a fixed display
// duration.  It is safe for concurrent use.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
	now     func() time.Time // swapped out in tests
}

// DefaultTTL matches the original widget's three-second toast.
const DefaultTTL = 3 * time.Second

// NewCenter returns a Center whose notices live for ttl.  A
// non-positive ttl falls back to DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// Success pushes a success notice.
func (c *Center) Success(message string) {
	c.push(message, SeveritySuccess)
}

// Error pushes an error notice.
func (c *Center) Error(message string) {
	c.push(message, SeverityError)
}

func (c *Center) push(message string, sev Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{
		Message:   message,
		Severity:  sev,
		ExpiresAt: c.now().Add(c.ttl),
	})
}

// Active returns the notices that have not yet expired, oldest first,
// and drops the expired ones.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	alive := c.notices[:0]
	for _, n := range c.notices {
		if n.ExpiresAt.After(now) {
			alive = append(alive, n)
		}
	}
	c.notices = alive
	out := make([]Notice, len(alive))
	copy(out, alive)
	return out
}
