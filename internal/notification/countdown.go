package notification

import "time"

// Countdown is an auto-dismiss timer driven by explicit frames. Each frame
// recomputes the remaining time from the wall clock, so pausing and resuming
// never accumulates drift.
type Countdown struct {
	duration  time.Duration
	start     time.Time
	remaining time.Duration
	running   bool
}

// NewCountdown returns a countdown of d that started at now.
func NewCountdown(d time.Duration, now time.Time) *Countdown {
	return &Countdown{
		duration:  d,
		start:     now,
		remaining: d,
		running:   d > 0,
	}
}

// Frame updates the remaining time. It reports true once the countdown has
// run out. Frames while paused or cancelled change nothing.
func (c *Countdown) Frame(now time.Time) bool {
	if !c.running {
		return false
	}
	c.remaining = c.duration - now.Sub(c.start)
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Pause withdraws the pending frame. The remaining time keeps the value of
// the last frame.
func (c *Countdown) Pause() {
	c.running = false
}

// Resume restarts from the remaining time: start becomes
// now - (duration - remaining). It does nothing once the time has run out.
func (c *Countdown) Resume(now time.Time) bool {
	if c.running || c.remaining <= 0 {
		return false
	}
	c.start = now.Add(-(c.duration - c.remaining))
	c.running = true
	return true
}

// Cancel stops the countdown for good.
func (c *Countdown) Cancel() {
	c.running = false
	c.remaining = 0
}

func (c *Countdown) Running() bool            { return c.running }
func (c *Countdown) Remaining() time.Duration { return c.remaining }
func (c *Countdown) Duration() time.Duration  { return c.duration }

// Fraction returns remaining/duration in [0, 1].
func (c *Countdown) Fraction() float64 {
	if c.duration <= 0 {
		return 0
	}
	f := float64(c.remaining) / float64(c.duration)
	return max(0, min(1, f))
}
