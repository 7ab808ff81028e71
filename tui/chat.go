// Package tui is the interactive conversation screen for the chat
// command. One model call is in flight at a time; the input area is
// replaced by a spinner until the turn completes.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarterturn/bedrock-cli/convo"
	"github.com/quarterturn/bedrock-cli/history"
	"github.com/quarterturn/bedrock-cli/nova"
)

// ChatModel drives the multi-turn conversation screen.
type ChatModel struct {
	session *convo.Session
	invoker convo.Invoker

	// Session persistence; nil disables saving.
	store  *history.Manager
	record *history.Session

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	transcript []line
	pending    []string // attachments queued for the next turn
	waiting    bool
	ready      bool
	width      int
	height     int
}

type line struct {
	role    string
	content string
	at      time.Time
}

type replyMsg struct {
	reply nova.DecodedReply
	err   error
}

// NewChat creates the chat screen. store and record may be nil when the
// transcript should not be persisted.
func NewChat(session *convo.Session, invoker convo.Invoker, store *history.Manager, record *history.Session) *ChatModel {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false) // Enter sends message

	s := spinner.New(spinner.WithSpinner(spinner.Line))
	s.Style = spinnerStyle

	m := &ChatModel{
		session:  session,
		invoker:  invoker,
		store:    store,
		record:   record,
		textarea: ta,
		spinner:  s,
	}

	// Replay a resumed conversation into the transcript.
	for _, msg := range session.Messages() {
		for _, block := range msg.Content {
			if block.Text != nil {
				m.addLine(string(msg.Role), *block.Text)
			} else {
				m.addLine(string(msg.Role), fmt.Sprintf("[%s attachment]", block.Tag()))
			}
		}
	}

	return m
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textarea.Blink)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-7)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 7
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(3)
		m.refreshView()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD:
			return m, tea.Quit

		case tea.KeyCtrlC:
			if m.textarea.Value() != "" {
				m.textarea.Reset()
			} else {
				return m, tea.Quit
			}

		case tea.KeyEnter:
			if !m.waiting {
				value := strings.TrimSpace(m.textarea.Value())
				if value != "" {
					m.textarea.Reset()
					if cmd := m.handleInput(value); cmd != nil {
						cmds = append(cmds, cmd)
					}
				}
			}
			return m, tea.Batch(cmds...)
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.addLine("error", msg.err.Error())
		} else {
			m.addLine("assistant", msg.reply.Text)
			m.saveRecord()
		}
		m.refreshView()

	case spinner.TickMsg:
		if m.waiting {
			s, cmd := m.spinner.Update(msg)
			m.spinner = s
			cmds = append(cmds, cmd)
		}
	}

	if !m.waiting {
		ta, cmd := m.textarea.Update(msg)
		m.textarea = ta
		cmds = append(cmds, cmd)
	}

	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ChatModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	var b strings.Builder

	header := headerStyle.Render(fmt.Sprintf("bedrock-cli chat | %s", m.session.Model()))
	b.WriteString(header + "\n")
	b.WriteString(helpStyle.Render("Commands: /attach <path>, /clear-attach, /quit") + "\n")
	b.WriteString(strings.Repeat("─", max(m.width, 1)) + "\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(fmt.Sprintf("%s Waiting for %s...\n", m.spinner.View(), m.session.Model()))
	} else {
		if len(m.pending) > 0 {
			b.WriteString(infoStyle.Render(fmt.Sprintf("Attached for next turn: %s", strings.Join(m.pending, ", "))) + "\n")
		}
		b.WriteString(m.textarea.View())
	}

	return b.String()
}

// handleInput routes slash commands and regular prompts. It returns the
// command that runs the model call, or nil for local-only input.
func (m *ChatModel) handleInput(input string) tea.Cmd {
	if strings.HasPrefix(input, "/") {
		parts := strings.SplitN(input, " ", 2)
		switch parts[0] {
		case "/attach":
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				m.addLine("system", "usage: /attach <path-or-s3-uri>")
			} else {
				m.pending = append(m.pending, strings.TrimSpace(parts[1]))
			}
			m.refreshView()
			return nil
		case "/clear-attach":
			m.pending = nil
			m.refreshView()
			return nil
		case "/quit", "/exit":
			return tea.Quit
		default:
			m.addLine("system", fmt.Sprintf("unknown command: %s", parts[0]))
			m.refreshView()
			return nil
		}
	}

	m.addLine("user", input)
	for _, path := range m.pending {
		m.addLine("system", fmt.Sprintf("attaching %s", path))
	}
	m.refreshView()

	attachments := m.pending
	m.pending = nil
	m.waiting = true

	return func() tea.Msg {
		reply, err := m.session.Say(context.Background(), m.invoker, input, attachments)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *ChatModel) addLine(role, content string) {
	m.transcript = append(m.transcript, line{role: role, content: content, at: time.Now()})
}

func (m *ChatModel) refreshView() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(m.transcript))
	m.viewport.GotoBottom()
}

func (m *ChatModel) saveRecord() {
	if m.store == nil || m.record == nil {
		return
	}
	m.record.Messages = m.session.Messages()
	if err := m.store.SaveSession(m.record); err != nil {
		m.addLine("error", fmt.Sprintf("failed to save session: %v", err))
	}
}

// renderTranscript formats the conversation for the viewport.
func renderTranscript(lines []line) string {
	var content strings.Builder
	for _, l := range lines {
		switch l.role {
		case "user":
			content.WriteString("\n" + userStyle.Render("> "+l.content) + "\n")
		case "assistant":
			content.WriteString("\n" + assistantStyle.Render(l.content) + "\n")
		case "error":
			content.WriteString("\n" + errorStyle.Render("error: "+l.content) + "\n")
		default:
			content.WriteString("\n" + infoStyle.Render("["+l.content+"]") + "\n")
		}
	}
	return content.String()
}
