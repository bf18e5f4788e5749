package component

import "time"

// Cooldown gates an ability by wall-clock timestamp: the ability is ready
// once now - lastUse >= Duration. A zero Cooldown is always ready.
type Cooldown struct {
	Duration time.Duration

	lastUse time.Time
	used    bool
}

// NewCooldown creates a ready cooldown.
func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{Duration: d}
}

// Ready reports whether the ability may be used at now.
func (c *Cooldown) Ready(now time.Time) bool {
	if c == nil || !c.used {
		return true
	}
	return now.Sub(c.lastUse) >= c.Duration
}

// Use marks the ability as used at now.
func (c *Cooldown) Use(now time.Time) {
	if c == nil {
		return
	}
	c.lastUse = now
	c.used = true
}

// TryUse consumes the cooldown if ready and reports whether it did.
func (c *Cooldown) TryUse(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.Use(now)
	return true
}

// Reset makes the cooldown ready again.
func (c *Cooldown) Reset() {
	if c == nil {
		return
	}
	c.used = false
	c.lastUse = time.Time{}
}

// Remaining returns how long until the cooldown is ready at now.
func (c *Cooldown) Remaining(now time.Time) time.Duration {
	if c.Ready(now) {
		return 0
	}
	return c.Duration - now.Sub(c.lastUse)
}
