package kiosk

import "time"

// defaultIdleTimeout is how long the kiosk waits without input before
// showing the attract screen.
const defaultIdleTimeout = 30 * time.Second

// idleMonitor flips to idle after a quiet period. The idle-to-active
// edge is reported exactly once so the conversation resets a single
// time per walk-up, no matter how many keys the visitor presses.
type idleMonitor struct {
	timeout      time.Duration
	lastActivity time.Time
	idle         bool
}

func newIdleMonitor(timeout time.Duration, now time.Time) idleMonitor {
	return idleMonitor{timeout: timeout, lastActivity: now}
}

// Touch records input activity. Returns true only when this event ends
// an idle period.
func (m *idleMonitor) Touch(now time.Time) bool {
	wasIdle := m.idle
	m.idle = false
	m.lastActivity = now
	return wasIdle
}

// Expire marks the monitor idle once the quiet period has elapsed.
// Returns true only on the active-to-idle transition.
func (m *idleMonitor) Expire(now time.Time) bool {
	if m.idle {
		return false
	}
	if now.Sub(m.lastActivity) < m.timeout {
		return false
	}
	m.idle = true
	return true
}

// Idle reports whether the kiosk is currently unattended.
func (m *idleMonitor) Idle() bool {
	return m.idle
}
