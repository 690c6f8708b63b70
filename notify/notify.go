// Package notify collects user-visible notifications so the application can
// render them however it likes. Posting is fire-and-forget.
package notify

import "sync"

// Level grades a notice.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is a single user-visible message. Sticky notices stay until
// explicitly dismissed; the rest are fair game for the UI to age out.
type Notice struct {
	Level  Level
	Text   string
	Sticky bool
}

// Notifier accepts notices.
type Notifier interface {
	Post(n Notice)
}

// Center is an in-memory Notifier that a UI drains each frame.
type Center struct {
	mu      sync.Mutex
	notices []Notice
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Post(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

// Notices returns a snapshot of the pending notices.
func (c *Center) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// DismissNonSticky drops everything except sticky notices.
func (c *Center) DismissNonSticky() {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.Sticky {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}
