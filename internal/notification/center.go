// Package notification manages the in-app toast stack and mirrors messages
// to desktop notifications.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the severity of a toast.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Warning Kind = "warning"
	Error   Kind = "error"
)

// ParseKind maps s to a Kind, defaulting to Info.
func ParseKind(s string) Kind {
	switch k := Kind(s); k {
	case Success, Warning, Error:
		return k
	}
	return Info
}

// Icon returns the glyph shown next to the message.
func (k Kind) Icon() string {
	switch k {
	case Success:
		return "✔"
	case Warning:
		return "⚠"
	case Error:
		return "✖"
	default:
		return "ℹ"
	}
}

const (
	// DefaultDuration applies when Show is given a negative duration.
	DefaultDuration = 5 * time.Second
	// RemovalDelay is how long a hidden toast stays on screen before removal.
	RemovalDelay = 300 * time.Millisecond
)

// Toast is a single notification.
type Toast struct {
	ID      string
	Kind    Kind
	Message string
	Hiding  bool

	countdown *Countdown
}

// Progress returns the fraction of display time left, 1 for toasts without
// a countdown.
func (t *Toast) Progress() float64 {
	if t.countdown == nil {
		return 1
	}
	return t.countdown.Fraction()
}

// HasCountdown reports whether the toast dismisses itself.
func (t *Toast) HasCountdown() bool {
	return t.countdown != nil
}

// Paused reports whether the countdown is stopped with time left.
func (t *Toast) Paused() bool {
	return t.countdown != nil && !t.countdown.Running() && t.countdown.Remaining() > 0 && !t.Hiding
}

// Center holds the visible toasts, most recent first.
type Center struct {
	mu      sync.Mutex
	toasts  []*Toast
	enabled bool
	now     func() time.Time
}

// NewCenter returns an enabled Center. A nil clock uses time.Now.
func NewCenter(now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	return &Center{enabled: true, now: now}
}

// SetEnabled toggles Show. Disabling does not remove visible toasts.
func (c *Center) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

func (c *Center) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Show prepends a toast and returns its ID, or "" when the centre is
// disabled. A zero duration shows a toast that stays until hidden; a
// negative one uses DefaultDuration.
func (c *Center) Show(message string, kind Kind, d time.Duration) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return ""
	}
	if d < 0 {
		d = DefaultDuration
	}

	t := &Toast{
		ID:      uuid.NewString(),
		Kind:    ParseKind(string(kind)),
		Message: message,
	}
	if d > 0 {
		t.countdown = NewCountdown(d, c.now())
	}
	c.toasts = append([]*Toast{t}, c.toasts...)
	return t.ID
}

// Hide cancels the toast's countdown and marks it hiding. The caller removes
// it after RemovalDelay. It reports false for unknown or already hiding IDs.
func (c *Center) Hide(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.find(id)
	if t == nil || t.Hiding {
		return false
	}
	c.hide(t)
	return true
}

func (c *Center) hide(t *Toast) {
	if t.countdown != nil {
		t.countdown.Cancel()
	}
	t.Hiding = true
}

// Remove drops the toast.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Pause stops the toast's countdown while the pointer is over it.
func (c *Center) Pause(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t := c.find(id); t != nil && t.countdown != nil && !t.Hiding {
		t.countdown.Pause()
	}
}

// Resume continues a paused countdown. It reports whether frames are needed
// again.
func (c *Center) Resume(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.find(id)
	if t == nil || t.countdown == nil || t.Hiding {
		return false
	}
	return t.countdown.Resume(c.now())
}

// Tick advances every running countdown to now. Toasts that ran out are
// hidden and their IDs returned.
func (c *Center) Tick(now time.Time) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []string
	for _, t := range c.toasts {
		if t.countdown == nil || t.Hiding {
			continue
		}
		if t.countdown.Frame(now) {
			c.hide(t)
			expired = append(expired, t.ID)
		}
	}
	return expired
}

// Animating reports whether any countdown still needs frames.
func (c *Center) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.toasts {
		if t.countdown != nil && t.countdown.Running() {
			return true
		}
	}
	return false
}

// Toasts returns the toasts, most recent first.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.toasts))
	for i, t := range c.toasts {
		out[i] = *t
	}
	return out
}

// Newest returns the ID of the most recent toast that is not hiding.
func (c *Center) Newest() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.toasts {
		if !t.Hiding {
			return t.ID
		}
	}
	return ""
}

func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.toasts)
}

func (c *Center) find(id string) *Toast {
	for _, t := range c.toasts {
		if t.ID == id {
			return t
		}
	}
	return nil
}
