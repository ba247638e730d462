package kiosk

import (
	"testing"
	"time"
)

func TestIdleMonitorExpires(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := newIdleMonitor(30*time.Second, t0)

	if m.Expire(t0.Add(29 * time.Second)) {
		t.Error("expired before the timeout elapsed")
	}
	if m.Idle() {
		t.Fatal("monitor should still be active")
	}

	if !m.Expire(t0.Add(30 * time.Second)) {
		t.Error("did not expire at the timeout")
	}
	if !m.Idle() {
		t.Fatal("monitor should be idle")
	}

	// Expiring again reports no transition.
	if m.Expire(t0.Add(31 * time.Second)) {
		t.Error("repeated expire reported a transition")
	}
}

func TestIdleMonitorEdgeTriggersOnce(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := newIdleMonitor(30*time.Second, t0)

	m.Expire(t0.Add(time.Minute))

	// The first key after an idle period is the reset edge.
	if !m.Touch(t0.Add(2 * time.Minute)) {
		t.Error("wake-up touch did not report the edge")
	}

	// Further keys while active never reset again.
	if m.Touch(t0.Add(2*time.Minute + time.Second)) {
		t.Error("second touch reported another edge")
	}
	if m.Touch(t0.Add(2*time.Minute + 2*time.Second)) {
		t.Error("third touch reported another edge")
	}
}

func TestIdleMonitorTouchDefersExpiry(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := newIdleMonitor(30*time.Second, t0)

	m.Touch(t0.Add(20 * time.Second))

	// The quiet period restarts from the last activity.
	if m.Expire(t0.Add(45 * time.Second)) {
		t.Error("expired although activity restarted the quiet period")
	}
	if !m.Expire(t0.Add(50 * time.Second)) {
		t.Error("did not expire 30s after the last activity")
	}
}
