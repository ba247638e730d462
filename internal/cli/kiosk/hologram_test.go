package kiosk

import (
	"strings"
	"testing"
	"time"
)

func TestHologramDuration(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  time.Duration
	}{
		{
			name:  "empty reply gets the base duration",
			reply: "",
			want:  3000 * time.Millisecond,
		},
		{
			name:  "short reply stays at base",
			reply: strings.Repeat("a", 49),
			want:  3000 * time.Millisecond,
		},
		{
			name:  "150 characters add three chunks",
			reply: strings.Repeat("a", 150),
			want:  4500 * time.Millisecond,
		},
		{
			name:  "long reply is capped",
			reply: strings.Repeat("a", 5000),
			want:  15000 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hologramDuration(tt.reply); got != tt.want {
				t.Errorf("hologramDuration(%d chars) = %v, want %v", len(tt.reply), got, tt.want)
			}
		})
	}
}

func TestHologramHideGeneration(t *testing.T) {
	var h hologramOverlay

	first := h.Show()
	second := h.Show()

	// A stale hide timer from the first reply must not hide the second.
	if h.Hide(first) {
		t.Error("stale generation hid the overlay")
	}
	if !h.Visible() {
		t.Fatal("overlay should still be visible")
	}

	if !h.Hide(second) {
		t.Error("current generation failed to hide the overlay")
	}
	if h.Visible() {
		t.Fatal("overlay should be hidden")
	}

	// Hiding an already hidden overlay is a no-op.
	if h.Hide(second) {
		t.Error("hide on hidden overlay reported a change")
	}
}

func TestHologramHideNowInvalidatesTimers(t *testing.T) {
	var h hologramOverlay

	gen := h.Show()
	h.HideNow()

	if h.Visible() {
		t.Fatal("overlay should be hidden")
	}

	// A later Show must not be cancelled by the old timer.
	h.Show()
	if h.Hide(gen) {
		t.Error("invalidated generation hid a newer overlay")
	}
	if !h.Visible() {
		t.Fatal("overlay should still be visible")
	}
}
