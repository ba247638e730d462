package kiosk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/speech"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/types"
)

// UI configuration constants
const (
	defaultInputWidth      = 100
	defaultViewportWidth   = 100
	defaultViewportHeight  = 30
	defaultWindowWidth     = 100
	defaultWindowHeight    = 40
	inputCharLimit         = 2000
	inputHeightReserved    = 2
	statusHeightReserved   = 3
	minContentHeight       = 10
	sessionIDDisplayLength = 8

	requestTimeout = 60 * time.Second
	idlePollEvery  = time.Second
)

// Style definitions
var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// kioskState is the conversation state of the terminal.
type kioskState int

const (
	stateIdle kioskState = iota
	stateAwaiting
	stateSpeaking
	stateError
)

// chatService is the server surface the kiosk terminal needs.
type chatService interface {
	Chat(ctx context.Context, sessionID, message, language string) (*types.ChatData, error)
	Reset(ctx context.Context, sessionID string) error
}

// Program encapsulates the kiosk TUI program
type Program struct {
	model Model
}

// NewProgram creates a new kiosk program instance
func NewProgram(service chatService, speechCtrl *speech.Controller, language string) *Program {
	return &Program{model: newModel(service, speechCtrl, language)}
}

// Run starts the kiosk TUI program
func (p *Program) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the Bubble Tea model containing all kiosk terminal state
type Model struct {
	// Dependencies
	service  chatService
	speech   *speech.Controller
	language string

	// Conversation state
	sessionID string
	state     kioskState
	errMsg    string

	// UI components
	input       textinput.Model
	contentView viewport.Model
	transcript  *strings.Builder

	// Presentation state
	hologram     hologramOverlay
	hologramText string
	idle         idleMonitor

	// Window dimensions
	width  int
	height int
}

func newModel(service chatService, speechCtrl *speech.Controller, language string) Model {
	input := textinput.New()
	input.Placeholder = "Ask about Westmead..."
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = ""

	contentViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)
	contentViewport.SetContent("")

	return Model{
		service:     service,
		speech:      speechCtrl,
		language:    language,
		sessionID:   uuid.New().String(),
		state:       stateIdle,
		input:       input,
		contentView: contentViewport,
		transcript:  &strings.Builder{},
		idle:        newIdleMonitor(defaultIdleTimeout, time.Now()),
		width:       defaultWindowWidth,
		height:      defaultWindowHeight,
	}
}

// Init initializes the model (Bubble Tea interface)
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, idleTick()}
	if m.speech.Enabled() {
		cmds = append(cmds, waitForSpeechEvent(m.speech.Events()))
	}
	return tea.Batch(cmds...)
}

// Message type definitions
type (
	replyMsg struct {
		reply *types.ChatData
		err   error
	}
	speechEventMsg  struct{ ev speech.Event }
	hologramHideMsg struct{ gen int }
	idleCheckMsg    struct{ at time.Time }
	resetDoneMsg    struct{ err error }
)

// Update processes messages and updates the model (Bubble Tea interface)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key is visitor activity. Waking from idle only resets the
		// conversation; the key itself is not processed.
		if m.idle.Touch(time.Now()) {
			cmds = append(cmds, m.resetConversation())
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.MouseMsg:
		if m.idle.Touch(time.Now()) {
			cmds = append(cmds, m.resetConversation())
		}

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case replyMsg:
		cmds = append(cmds, m.handleReply(msg)...)

	case speechEventMsg:
		m.handleSpeechEvent(msg.ev)
		cmds = append(cmds, waitForSpeechEvent(m.speech.Events()))

	case hologramHideMsg:
		if m.hologram.Hide(msg.gen) && m.state == stateSpeaking {
			m.state = stateIdle
		}

	case idleCheckMsg:
		if m.idle.Expire(msg.at) {
			m.stopPresentation()
		}
		cmds = append(cmds, idleTick())

	case resetDoneMsg:
		// Reset failures are invisible to the visitor; a fresh session
		// id already isolates the new conversation.
	}

	if m.state == stateIdle && !m.idle.Idle() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.speech.Stop()
		cmds = append(cmds, tea.Quit)

	case tea.KeyEnter:
		switch m.state {
		case stateAwaiting:
			// One question in flight at a time.
		case stateSpeaking:
			m.stopPresentation()
		case stateError:
			m.errMsg = ""
			m.state = stateIdle
			m.refreshContent()
		default:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.appendQuestion(text)
				cmds = append(cmds, m.askCmd(text))
			}
		}

	case tea.KeyUp:
		m.contentView.LineUp(1)

	case tea.KeyDown:
		m.contentView.LineDown(1)

	case tea.KeyPgUp:
		m.contentView.ViewUp()

	case tea.KeyPgDown:
		m.contentView.ViewDown()
	}

	return cmds
}

// handleWindowResize handles window size changes
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.contentView.Width = msg.Width
	m.contentView.Height = contentHeight
	m.input.Width = msg.Width - 3

	// Reapply wrapping when window size changes
	m.refreshContent()
}

// appendQuestion records the visitor's question and enters the waiting state.
func (m *Model) appendQuestion(text string) {
	m.input.Reset()

	m.transcript.WriteString("\n")
	m.transcript.WriteString(boldStyle.Render("You"))
	m.transcript.WriteString("\n")
	m.transcript.WriteString(text)
	m.transcript.WriteString("\n")

	m.state = stateAwaiting
	m.refreshContent()
}

// handleReply processes the server's answer.
func (m *Model) handleReply(msg replyMsg) []tea.Cmd {
	if msg.err != nil {
		m.state = stateError
		m.errMsg = msg.err.Error()
		m.refreshContent()
		return nil
	}

	answer := msg.reply.Message.Content

	m.transcript.WriteString("\n")
	m.transcript.WriteString(accentStyle.Render("Assistant"))
	m.transcript.WriteString("\n")
	m.transcript.WriteString(answer)
	m.transcript.WriteString("\n")
	m.refreshContent()

	m.state = stateSpeaking
	m.hologramText = answer

	if m.speech.Enabled() {
		// The overlay follows the playback events.
		m.speech.Speak(answer)
		return nil
	}

	// No speech backend: show the overlay for a duration derived from
	// the reply length.
	gen := m.hologram.Show()
	return []tea.Cmd{hideAfter(hologramDuration(answer), gen)}
}

// handleSpeechEvent keeps the overlay in lockstep with playback.
func (m *Model) handleSpeechEvent(ev speech.Event) {
	switch ev.Kind {
	case speech.EventStarted:
		m.hologramText = ev.Text
		m.hologram.Show()
		m.state = stateSpeaking
	case speech.EventEnded:
		m.hologram.HideNow()
		if m.state == stateSpeaking {
			m.state = stateIdle
		}
	case speech.EventFailed:
		// Playback failure is not fatal; the answer stays on screen.
		m.hologram.HideNow()
		if m.state == stateSpeaking {
			m.state = stateIdle
		}
	}
}

// stopPresentation halts speech and hides the overlay.
func (m *Model) stopPresentation() {
	m.speech.Stop()
	m.hologram.HideNow()
	if m.state == stateSpeaking {
		m.state = stateIdle
	}
}

// resetConversation starts a fresh session after an idle period. The
// old session is closed on the server in the background.
func (m *Model) resetConversation() tea.Cmd {
	old := m.sessionID
	m.sessionID = uuid.New().String()
	m.transcript = &strings.Builder{}
	m.errMsg = ""
	m.state = stateIdle
	m.stopPresentation()
	m.input.Reset()
	m.refreshContent()

	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return resetDoneMsg{err: service.Reset(ctx, old)}
	}
}

// askCmd sends the question to the server.
func (m *Model) askCmd(text string) tea.Cmd {
	service := m.service
	sessionID := m.sessionID
	language := m.language
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := service.Chat(ctx, sessionID, text, language)
		return replyMsg{reply: reply, err: err}
	}
}

// waitForSpeechEvent waits for the next playback event
func waitForSpeechEvent(ch <-chan speech.Event) tea.Cmd {
	return func() tea.Msg {
		return speechEventMsg{ev: <-ch}
	}
}

// hideAfter schedules an overlay hide for a specific generation.
func hideAfter(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return hologramHideMsg{gen: gen}
	})
}

// idleTick polls the idle monitor once a second.
func idleTick() tea.Cmd {
	return tea.Tick(idlePollEvery, func(t time.Time) tea.Msg {
		return idleCheckMsg{at: t}
	})
}

// refreshContent refreshes the display content
func (m *Model) refreshContent() {
	display := m.transcript.String()
	if m.errMsg != "" {
		display += "\n" + errorStyle.Render(fmt.Sprintf("Something went wrong: %s", m.errMsg))
		display += "\n" + dimStyle.Render("Press Enter to try again.")
	}

	if m.width > 0 {
		display = wrapText(display, m.width)
	}

	m.contentView.SetContent(display)
	m.contentView.GotoBottom()
}

// wrapText applies auto-wrapping to text using display cell widths
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		result.WriteString(wrapLine(line, maxWidth))
	}

	return result.String()
}

// wrapLine wraps a single line, handling wide runes correctly
func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range line {
		runeW := runewidth.RuneWidth(r)

		if currentWidth+runeW > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += runeW
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// View renders the UI (Bubble Tea interface)
func (m Model) View() string {
	if m.idle.Idle() {
		return m.attractView()
	}

	if m.hologram.Visible() {
		return m.hologramView()
	}

	status := dimStyle.Render(fmt.Sprintf("Session %s", shortSession(m.sessionID)))
	switch m.state {
	case stateAwaiting:
		status += dimStyle.Render(" • thinking...")
	case stateSpeaking:
		status += dimStyle.Render(" • speaking")
	}

	content := m.contentView.View()

	var inputView string
	switch m.state {
	case stateAwaiting:
		inputView = dimStyle.Render("> ") + dimStyle.Render("waiting for the answer...")
	case stateSpeaking:
		inputView = dimStyle.Render("> ") + dimStyle.Render("press Enter to stop")
	default:
		inputView = promptStyle.Render("> ") + m.input.View()
	}

	help := dimStyle.Render("Enter send • ↑↓ scroll • Esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, status, "", content, "", inputView, help)
}

// attractView is the full-screen invitation shown after 30s without input.
func (m Model) attractView() string {
	banner := overlayStyle.Render(
		boldStyle.Render("Westmead International School") + "\n\n" +
			"Ask me anything about the school!\n\n" +
			dimStyle.Render("Press any key to start"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, banner)
}

// hologramView is the full-screen overlay shown while the answer plays.
func (m Model) hologramView() string {
	text := m.hologramText
	boxWidth := m.width * 2 / 3
	if boxWidth > 10 {
		text = wrapText(text, boxWidth)
	}

	box := overlayStyle.Render(
		accentStyle.Render("● Westmead Assistant") + "\n\n" + text,
	)
	footer := dimStyle.Render("Press Enter to continue")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, box, "", footer))
}

func shortSession(id string) string {
	if len(id) < sessionIDDisplayLength {
		return id
	}
	return id[:sessionIDDisplayLength]
}
