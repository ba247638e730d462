package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeSynthesizer blocks each utterance until released or cancelled.
type fakeSynthesizer struct {
	mu      sync.Mutex
	started []string
	release chan struct{}
}

func newFakeSynthesizer() *fakeSynthesizer {
	return &fakeSynthesizer{release: make(chan struct{})}
}

func (f *fakeSynthesizer) Name() string { return "fake" }

func (f *fakeSynthesizer) Speak(ctx context.Context, text string) error {
	f.mu.Lock()
	f.started = append(f.started, text)
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.release:
		return nil
	}
}

func (f *fakeSynthesizer) startedTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.started))
	copy(out, f.started)
	return out
}

func nextEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for speech event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: kind=%d text=%q err=%v", ev.Kind, ev.Text, ev.Err)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSpeakCancelsPreviousUtterance(t *testing.T) {
	synth := newFakeSynthesizer()
	ctrl := NewController(synth)

	ctrl.Speak("first")
	ev := nextEvent(t, ctrl.Events())
	if ev.Kind != EventStarted || ev.Text != "first" {
		t.Fatalf("expected started(first), got kind=%d text=%q", ev.Kind, ev.Text)
	}

	// Speak returns only after the first utterance is fully stopped.
	ctrl.Speak("second")
	ev = nextEvent(t, ctrl.Events())
	if ev.Kind != EventStarted || ev.Text != "second" {
		t.Fatalf("expected started(second), got kind=%d text=%q", ev.Kind, ev.Text)
	}

	synth.release <- struct{}{}
	ev = nextEvent(t, ctrl.Events())
	if ev.Kind != EventEnded || ev.Text != "second" {
		t.Fatalf("expected ended(second), got kind=%d text=%q", ev.Kind, ev.Text)
	}

	// The cancelled utterance must never report completion.
	assertNoEvent(t, ctrl.Events())

	started := synth.startedTexts()
	if len(started) != 2 || started[0] != "first" || started[1] != "second" {
		t.Fatalf("unexpected utterance order: %v", started)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	synth := newFakeSynthesizer()
	ctrl := NewController(synth)

	// Stop without an active utterance is a no-op.
	ctrl.Stop()

	ctrl.Speak("hello")
	ev := nextEvent(t, ctrl.Events())
	if ev.Kind != EventStarted {
		t.Fatalf("expected started event, got kind=%d", ev.Kind)
	}

	ctrl.Stop()
	ctrl.Stop()

	assertNoEvent(t, ctrl.Events())
}

func TestDisabledControllerIgnoresSpeak(t *testing.T) {
	ctrl := NewController(nil)

	if ctrl.Enabled() {
		t.Fatal("controller without synthesizer must report disabled")
	}

	ctrl.Speak("ignored")
	ctrl.Stop()

	assertNoEvent(t, ctrl.Events())
}

type failingSynthesizer struct{ err error }

func (f *failingSynthesizer) Name() string { return "failing" }

func (f *failingSynthesizer) Speak(ctx context.Context, text string) error {
	return f.err
}

func TestPlaybackFailureEmitsFailed(t *testing.T) {
	wantErr := errors.New("device busy")
	ctrl := NewController(&failingSynthesizer{err: wantErr})

	ctrl.Speak("hello")

	ev := nextEvent(t, ctrl.Events())
	if ev.Kind != EventStarted {
		t.Fatalf("expected started event, got kind=%d", ev.Kind)
	}

	ev = nextEvent(t, ctrl.Events())
	if ev.Kind != EventFailed {
		t.Fatalf("expected failed event, got kind=%d", ev.Kind)
	}
	if !errors.Is(ev.Err, wantErr) {
		t.Fatalf("expected wrapped %v, got %v", wantErr, ev.Err)
	}
}
