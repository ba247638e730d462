package kiosk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/speech"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/types"
)

// fakeChatService records calls and returns canned replies.
type fakeChatService struct {
	mu         sync.Mutex
	chatCalls  []string
	resetCalls []string
	reply      *types.ChatData
	err        error
}

func (f *fakeChatService) Chat(ctx context.Context, sessionID, message, language string) (*types.ChatData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatCalls = append(f.chatCalls, message)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatService) Reset(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetCalls = append(f.resetCalls, sessionID)
	return nil
}

func (f *fakeChatService) chatCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.chatCalls)
}

func (f *fakeChatService) resets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.resetCalls))
	copy(out, f.resetCalls)
	return out
}

func answer(text string) *types.ChatData {
	return &types.ChatData{
		Message: types.ChatMessage{
			Role:    "assistant",
			Content: text,
		},
		IsSchoolRelated: true,
	}
}

// runCmd executes a command tree synchronously and returns the
// produced messages. Tick commands are never executed here.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newTestModel(service chatService) Model {
	return newModel(service, speech.NewController(nil), "english")
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestEnterSendsQuestion(t *testing.T) {
	service := &fakeChatService{reply: answer("Westmead offers BSIT and more.")}
	m := newTestModel(service)
	m.input.SetValue("What courses are offered?")

	m, cmd := pressEnter(m)

	if m.state != stateAwaiting {
		t.Fatalf("expected awaiting state, got %d", m.state)
	}

	msgs := runCmd(cmd)
	if service.chatCount() != 1 {
		t.Fatalf("expected 1 chat call, got %d", service.chatCount())
	}

	var reply replyMsg
	found := false
	for _, msg := range msgs {
		if r, ok := msg.(replyMsg); ok {
			reply = r
			found = true
		}
	}
	if !found {
		t.Fatal("no reply message produced")
	}

	updated, _ := m.Update(reply)
	m = updated.(Model)

	if m.state != stateSpeaking {
		t.Fatalf("expected speaking state after reply, got %d", m.state)
	}
	if !m.hologram.Visible() {
		t.Fatal("overlay should be visible while the answer plays")
	}
}

func TestAtMostOneRequestInFlight(t *testing.T) {
	service := &fakeChatService{reply: answer("hello")}
	m := newTestModel(service)
	m.input.SetValue("first question")

	m, cmd := pressEnter(m)
	runCmd(cmd)

	if service.chatCount() != 1 {
		t.Fatalf("expected 1 chat call, got %d", service.chatCount())
	}

	// Enter while waiting must not send a second request.
	m.input.SetValue("second question")
	m, cmd = pressEnter(m)
	runCmd(cmd)

	if service.chatCount() != 1 {
		t.Fatalf("expected still 1 chat call, got %d", service.chatCount())
	}
	if m.state != stateAwaiting {
		t.Fatalf("expected awaiting state, got %d", m.state)
	}
}

func TestEnterWhileSpeakingStopsPresentation(t *testing.T) {
	service := &fakeChatService{reply: answer("a rather long answer")}
	m := newTestModel(service)
	m.input.SetValue("question")

	m, cmd := pressEnter(m)
	msgs := runCmd(cmd)
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	if m.state != stateSpeaking {
		t.Fatalf("expected speaking state, got %d", m.state)
	}

	m, _ = pressEnter(m)

	if m.state != stateIdle {
		t.Fatalf("expected idle state after stop, got %d", m.state)
	}
	if m.hologram.Visible() {
		t.Fatal("overlay should be hidden after stop")
	}
	if service.chatCount() != 1 {
		t.Fatalf("stop must not send a request, got %d chat calls", service.chatCount())
	}
}

func TestStaleHologramTimerIgnored(t *testing.T) {
	service := &fakeChatService{reply: answer("answer")}
	m := newTestModel(service)
	m.input.SetValue("question")

	m, cmd := pressEnter(m)
	for _, msg := range runCmd(cmd) {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	staleGen := m.hologram.gen - 1
	updated, _ := m.Update(hologramHideMsg{gen: staleGen})
	m = updated.(Model)

	if !m.hologram.Visible() {
		t.Fatal("stale timer hid the overlay")
	}
	if m.state != stateSpeaking {
		t.Fatalf("stale timer changed state to %d", m.state)
	}

	updated, _ = m.Update(hologramHideMsg{gen: m.hologram.gen})
	m = updated.(Model)

	if m.hologram.Visible() {
		t.Fatal("current timer failed to hide the overlay")
	}
	if m.state != stateIdle {
		t.Fatalf("expected idle state after hide, got %d", m.state)
	}
}

func TestReplyErrorEntersErrorStateAndRecovers(t *testing.T) {
	service := &fakeChatService{err: errors.New("server unreachable")}
	m := newTestModel(service)
	m.input.SetValue("question")

	m, cmd := pressEnter(m)
	for _, msg := range runCmd(cmd) {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	if m.state != stateError {
		t.Fatalf("expected error state, got %d", m.state)
	}

	// Enter acknowledges the error and returns to ready.
	m, _ = pressEnter(m)

	if m.state != stateIdle {
		t.Fatalf("expected idle state after acknowledging, got %d", m.state)
	}
	if m.errMsg != "" {
		t.Fatalf("error message not cleared: %q", m.errMsg)
	}
}

func TestIdleWakeResetsConversationOnce(t *testing.T) {
	service := &fakeChatService{reply: answer("hello")}
	m := newTestModel(service)
	oldSession := m.sessionID

	// Put some text on screen, then let the kiosk go idle.
	m.transcript.WriteString("old transcript")
	updated, _ := m.Update(idleCheckMsg{at: time.Now().Add(time.Minute)})
	m = updated.(Model)

	if !m.idle.Idle() {
		t.Fatal("kiosk should be idle")
	}

	// The waking key resets the session without typing anything.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = updated.(Model)
	runCmd(cmd)

	if m.sessionID == oldSession {
		t.Fatal("wake-up did not mint a new session")
	}
	if m.transcript.Len() != 0 {
		t.Fatal("wake-up did not clear the transcript")
	}
	if m.input.Value() != "" {
		t.Fatalf("waking key leaked into the input: %q", m.input.Value())
	}

	resets := service.resets()
	if len(resets) != 1 || resets[0] != oldSession {
		t.Fatalf("expected one reset for %s, got %v", oldSession, resets)
	}

	// The next key is ordinary input, not another reset.
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	m = updated.(Model)
	runCmd(cmd)

	if got := len(service.resets()); got != 1 {
		t.Fatalf("expected still one reset, got %d", got)
	}
	if m.input.Value() != "i" {
		t.Fatalf("expected input %q, got %q", "i", m.input.Value())
	}
}
