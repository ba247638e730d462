package speech

import (
	"context"
	"sync"
)

// EventKind classifies playback lifecycle events.
type EventKind int

const (
	EventStarted EventKind = iota
	EventEnded
	EventFailed
)

// Event is delivered on the controller's channel for every utterance
// that starts, finishes, or fails. Cancelled utterances emit nothing
// after the cancel.
type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// Controller serializes speech playback. At most one utterance is
// active; starting a new one cancels the previous one synchronously.
type Controller struct {
	synth  Synthesizer
	events chan Event

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewController wraps a synthesizer. synth may be nil, which disables
// playback entirely.
func NewController(synth Synthesizer) *Controller {
	return &Controller{
		synth:  synth,
		events: make(chan Event, 16),
	}
}

// Enabled reports whether a speech backend is available.
func (c *Controller) Enabled() bool {
	return c.synth != nil
}

// Events returns the playback event stream consumed by the UI.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Speak starts speaking text, cancelling any active utterance first.
// The previous utterance is fully stopped before the new one begins,
// so its completion event can never arrive after the new start event.
func (c *Controller) Speak(text string) {
	if c.synth == nil {
		return
	}

	c.mu.Lock()
	c.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	c.emit(Event{Kind: EventStarted, Text: text})

	go func() {
		defer close(done)

		err := c.synth.Speak(ctx, text)
		if ctx.Err() != nil {
			// Superseded or stopped; the cancel already decided the outcome.
			return
		}
		if err != nil {
			c.emit(Event{Kind: EventFailed, Text: text, Err: err})
			return
		}
		c.emit(Event{Kind: EventEnded, Text: text})
	}()
}

// Stop cancels the active utterance, if any. Safe to call repeatedly.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// stopLocked cancels and waits for the active utterance. Caller holds mu.
func (c *Controller) stopLocked() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

// emit never blocks the playback goroutine; if the UI has fallen this
// far behind, dropping the event is preferable to a deadlock.
func (c *Controller) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}
