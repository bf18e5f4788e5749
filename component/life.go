package component

import "github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"

// HealthListener receives (old, new) health values after every clamp.
//
// Listeners run synchronously inside Damage/Heal/SetCurrentHealth and must not
// mutate the same LifeComponent from the callback.
type HealthListener func(old, new int)

// LifeComponent is a clamped health value shared by every animate actor.
type LifeComponent struct {
	max       int
	current   int
	listeners []HealthListener
}

// NewLife creates a LifeComponent at full health. Non-positive max becomes 1.
func NewLife(max int) *LifeComponent {
	if max <= 0 {
		max = 1
	}
	return &LifeComponent{max: max, current: max}
}

// OnChange registers a listener for health changes.
func (l *LifeComponent) OnChange(fn HealthListener) {
	if l == nil || fn == nil {
		return
	}
	l.listeners = append(l.listeners, fn)
}

// Damage lowers health by n, never below 0.
func (l *LifeComponent) Damage(n int) {
	if l == nil || n <= 0 {
		return
	}
	l.set(l.current - n)
}

// Heal raises health by n, never above max.
func (l *LifeComponent) Heal(n int) {
	if l == nil || n <= 0 {
		return
	}
	l.set(l.current + n)
}

// SetCurrentHealth sets health to v clamped into [0, max].
func (l *LifeComponent) SetCurrentHealth(v int) {
	if l == nil {
		return
	}
	l.set(v)
}

// Restore returns health to max.
func (l *LifeComponent) Restore() {
	if l == nil {
		return
	}
	l.set(l.max)
}

func (l *LifeComponent) set(v int) {
	v = common.Clamp(v, 0, l.max)
	old := l.current
	l.current = v
	for _, fn := range l.listeners {
		fn(old, v)
	}
}

func (l *LifeComponent) Current() int {
	if l == nil {
		return 0
	}
	return l.current
}

func (l *LifeComponent) Max() int {
	if l == nil {
		return 0
	}
	return l.max
}

// IsDead reports whether health reached 0.
func (l *LifeComponent) IsDead() bool {
	return l == nil || l.current == 0
}

// Percentage returns current/max in [0, 1].
func (l *LifeComponent) Percentage() float64 {
	if l == nil || l.max == 0 {
		return 0
	}
	return float64(l.current) / float64(l.max)
}
