package component

import "time"

// TimedEffect is a status flag that expires at a timestamp, checked each tick.
// Starting it again overwrites the expiry.
type TimedEffect struct {
	expiresAt time.Time
}

// Start activates the effect until now+d.
func (e *TimedEffect) Start(now time.Time, d time.Duration) {
	if e == nil {
		return
	}
	e.expiresAt = now.Add(d)
}

// Active reports whether the effect is still running at now.
func (e *TimedEffect) Active(now time.Time) bool {
	if e == nil {
		return false
	}
	return now.Before(e.expiresAt)
}

// Clear ends the effect immediately.
func (e *TimedEffect) Clear() {
	if e == nil {
		return
	}
	e.expiresAt = time.Time{}
}
