package kiosk

import "time"

// Hologram overlay timing when speech playback is unavailable.
const (
	hologramBaseMs     = 3000
	hologramPerChunkMs = 500
	hologramChunkChars = 50
	hologramMaxMs      = 15000
)

// hologramDuration derives the overlay display time from the reply
// length: a base of 3 seconds plus half a second per 50 characters,
// capped at 15 seconds.
func hologramDuration(reply string) time.Duration {
	ms := hologramBaseMs + (len(reply)/hologramChunkChars)*hologramPerChunkMs
	if ms > hologramMaxMs {
		ms = hologramMaxMs
	}
	return time.Duration(ms) * time.Millisecond
}

// hologramOverlay tracks overlay visibility. Each Show bumps the
// generation so that a pending hide timer from an earlier reply cannot
// hide a newer one.
type hologramOverlay struct {
	visible bool
	gen     int
}

// Show makes the overlay visible and returns the generation a hide
// timer must present to take effect.
func (h *hologramOverlay) Show() int {
	h.visible = true
	h.gen++
	return h.gen
}

// Hide hides the overlay if gen is still current. Returns whether the
// overlay state changed.
func (h *hologramOverlay) Hide(gen int) bool {
	if gen != h.gen || !h.visible {
		return false
	}
	h.visible = false
	return true
}

// HideNow hides the overlay unconditionally and invalidates any
// pending hide timer.
func (h *hologramOverlay) HideNow() {
	h.gen++
	h.visible = false
}

func (h *hologramOverlay) Visible() bool {
	return h.visible
}
