package speech

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Synthesizer turns text into audible speech. Speak blocks until the
// utterance finishes or ctx is cancelled.
type Synthesizer interface {
	// Name identifies the backend for logging.
	Name() string
	Speak(ctx context.Context, text string) error
}

// commandSynthesizer shells out to a text-to-speech binary, passing the
// utterance as the final argument.
type commandSynthesizer struct {
	path string
	args []string
}

func (s *commandSynthesizer) Name() string {
	return s.path
}

func (s *commandSynthesizer) Speak(ctx context.Context, text string) error {
	args := make([]string, 0, len(s.args)+1)
	args = append(args, s.args...)
	args = append(args, text)

	cmd := exec.CommandContext(ctx, s.path, args...)
	if err := cmd.Run(); err != nil {
		// Cancellation kills the process; not a playback failure.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("speech command failed: %w", err)
	}
	return nil
}

// Detect resolves a speech backend once at startup. override is an
// optional command line from the config file, e.g. "espeak -s 150".
// Returns nil when no usable backend exists; the kiosk then falls back
// to timer-driven presentation.
func Detect(override string) (Synthesizer, error) {
	if override != "" {
		words, err := shellquote.Split(override)
		if err != nil {
			return nil, fmt.Errorf("invalid speech command: %w", err)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("invalid speech command: empty")
		}
		path, err := exec.LookPath(words[0])
		if err != nil {
			return nil, fmt.Errorf("speech command not found: %w", err)
		}
		return &commandSynthesizer{path: path, args: words[1:]}, nil
	}

	// espeak on Linux kiosk terminals, say on macOS dev machines.
	for _, candidate := range []string{"espeak", "say"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return &commandSynthesizer{path: path}, nil
		}
	}

	return nil, nil
}
