package chatui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// sendState is the request lifecycle: idle, or exactly one request in flight.
type sendState int

const (
	stateIdle sendState = iota
	stateSending
)

const (
	headerHeight = 1
	typingHeight = 1
	inputHeight  = 3
	footerHeight = 1

	// fillerDelay is how long a request runs before the typing indicator
	// switches to the filler phrase.
	fillerDelay = time.Second
	// typingFiller replaces the animated dots on slow responses. Cosmetic
	// only; the request keeps running.
	typingFiller = "I'm thinking about your question..."
	// resizeSettle is the debounce window for window resizes and divider
	// drags before panes are re-measured.
	resizeSettle = 150 * time.Millisecond
)

// Config configures the chat widget.
type Config struct {
	// ServerURL is the base URL of a running portfolio server.
	ServerURL string
	// StateFile is where the conversation is persisted. Empty disables
	// persistence.
	StateFile string
}

// Model is the root bubbletea model for the chat widget.
type Model struct {
	client  *Client
	session *SessionStore
	styles  Styles

	input    textarea.Model
	viewport viewport.Model
	mainView viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	state   sendState
	history []Message
	// filler reports whether the in-flight request has crossed fillerDelay.
	filler  bool
	sendSeq int

	split   splitLayout
	page    string
	pageErr error

	width  int
	height int
	ready  bool

	pendingWidth  int
	pendingHeight int
	resizeSeq     int
}

// New creates the chat widget. The persisted conversation is restored when
// present and valid; anything else starts fresh with the greeting.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about Alex Jordan..."
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.CharLimit = 2000
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	session := NewSessionStore(cfg.StateFile)
	history := session.Load()
	if history == nil {
		history = []Message{greetingMessage()}
	}

	return Model{
		client:  NewClient(cfg.ServerURL),
		session: session,
		styles:  DefaultStyles(),
		input:   ta,
		spinner: sp,
		history: history,
	}
}

// History exposes the current transcript, primarily for tests.
func (m Model) History() []Message {
	return m.history
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.fetchPageCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Debounce: apply the new size only after resizes settle.
		m.pendingWidth = msg.Width
		m.pendingHeight = msg.Height
		m.resizeSeq++
		seq := m.resizeSeq
		if !m.ready {
			// First size arrives once; apply it immediately.
			m.applySize(msg.Width, msg.Height)
			return m, nil
		}
		return m, tea.Tick(resizeSettle, func(time.Time) tea.Msg {
			return resizeTickMsg{seq: seq}
		})

	case resizeTickMsg:
		if msg.seq == m.resizeSeq {
			m.applySize(m.pendingWidth, m.pendingHeight)
		}
		return m, nil

	case replyMsg:
		m.state = stateIdle
		m.filler = false
		if msg.err != nil {
			m.history = append(m.history, newMessage(RoleSystem,
				fmt.Sprintf("Something went wrong: %v. Please try again.", msg.err)))
		} else {
			m.history = append(m.history, newMessage(RoleAssistant, msg.content))
		}
		m.session.Save(m.history)
		m.refreshTranscript()
		return m, nil

	case fillerTickMsg:
		if msg.seq == m.sendSeq && m.state == stateSending {
			m.filler = true
		}
		return m, nil

	case pageMsg:
		m.page = msg.content
		m.pageErr = msg.err
		m.refreshMainPane()
		return m, nil

	case spinner.TickMsg:
		if m.state == stateSending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+r":
		return m.reset()

	case "ctrl+s":
		m.split.toggle(m.width)
		m.applySize(m.width, m.height)
		return m, nil

	case "[", "]":
		// Divider adjustment, but only when it cannot collide with typing.
		if m.split.active(m.width) && strings.TrimSpace(m.input.Value()) == "" {
			delta := SplitStep
			if msg.String() == "[" {
				delta = -SplitStep
			}
			m.split.resize(delta, m.width)
			return m, m.scheduleRemeasure()
		}

	case "enter":
		return m.send()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.split.startDrag(msg.X, m.width)
		}
	case tea.MouseActionMotion:
		if m.split.dragging {
			m.split.drag(msg.X, m.width)
			return m, m.scheduleRemeasure()
		}
	case tea.MouseActionRelease:
		if m.split.dragging {
			m.split.endDrag()
			return m, m.scheduleRemeasure()
		}
	}
	return m, nil
}

// send validates the input and fires the request. Blank input is a no-op and
// a second send while one is in flight is blocked, not queued.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.state == stateSending {
		return m, nil
	}

	prior := m.history
	m.history = append(m.history, newMessage(RoleUser, text))
	m.session.Save(m.history)
	m.input.Reset()
	m.state = stateSending
	m.filler = false
	m.sendSeq++
	seq := m.sendSeq
	m.refreshTranscript()

	return m, tea.Batch(
		m.sendCmd(text, prior),
		m.spinner.Tick,
		tea.Tick(fillerDelay, func(time.Time) tea.Msg {
			return fillerTickMsg{seq: seq}
		}),
	)
}

// reset clears the conversation back to the greeting and wipes the persisted
// state.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.history = []Message{greetingMessage()}
	m.session.Reset()
	m.state = stateIdle
	m.filler = false
	m.input.Reset()
	m.refreshTranscript()
	return m, nil
}

func (m Model) sendCmd(message string, history []Message) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Send(message, history)
		return replyMsg{content: reply, err: err}
	}
}

func (m Model) fetchPageCmd() tea.Cmd {
	return func() tea.Msg {
		content, err := m.client.FetchPage()
		return pageMsg{content: content, err: err}
	}
}

func (m *Model) scheduleRemeasure() tea.Cmd {
	m.pendingWidth = m.width
	m.pendingHeight = m.height
	m.resizeSeq++
	seq := m.resizeSeq
	return tea.Tick(resizeSettle, func(time.Time) tea.Msg {
		return resizeTickMsg{seq: seq}
	})
}

// applySize recomputes every pane for the given terminal size.
func (m *Model) applySize(width, height int) {
	m.width = width
	m.height = height

	chatWidth := width
	if m.split.active(width) {
		m.split.chatWidth = clampChatWidth(m.split.chatWidth, width)
		chatWidth = m.split.chatWidth
	}

	bodyHeight := height - headerHeight - typingHeight - inputHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(chatWidth, bodyHeight)
		m.mainView = viewport.New(m.split.mainWidth(width), height-headerHeight)
		m.ready = true
	} else {
		m.viewport.Width = chatWidth
		m.viewport.Height = bodyHeight
		m.mainView.Width = m.split.mainWidth(width)
		m.mainView.Height = height - headerHeight
	}

	m.input.SetWidth(chatWidth - 4)

	// Re-wrap markdown to the new chat width.
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(chatWidth-4),
	)
	m.refreshTranscript()
	m.refreshMainPane()
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m *Model) refreshMainPane() {
	if !m.ready {
		return
	}
	if m.pageErr != nil {
		m.mainView.SetContent(m.styles.System.Render(
			fmt.Sprintf("Portfolio page unavailable: %v", m.pageErr)))
		return
	}
	m.mainView.SetContent(m.styles.MainPane.
		Width(m.split.mainWidth(m.width)).
		Render(m.page))
}
