// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var (
	userBubble  = lipgloss.NewStyle().Bold(true)
	modelBubble = lipgloss.NewStyle()
)

// ChatModel is the conversation with the AI assistant.
type ChatModel struct {
	ctx  context.Context
	chat *service.ChatService

	input    textinput.Model
	viewport viewport.Model
}

func NewChatModel(ctx context.Context, services *service.ClientServices) *ChatModel {
	input := newInput("Ask about your finances...", 60)
	input.CharLimit = 1000

	return &ChatModel{
		ctx:      ctx,
		chat:     services.Chat,
		input:    input,
		viewport: viewport.New(80, 16),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	if !m.chat.Available() {
		return nil
	}
	m.chat.Open()
	m.refreshViewport()
	m.input.Focus()
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.refreshViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-8, 20)
		m.viewport.Height = max(msg.Height-14, 5)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.input.Blur()
			return m, navigate(pageDashboard)
		case key.Matches(msg, keys.enter):
			if !m.chat.Available() || m.chat.Sending() {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, m.cmdSend(text)
		case msg.String() == "pgup" || msg.String() == "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	if !m.chat.Available() {
		return renderPage("ASSISTANT", app.MsgChatUnavailable, "esc: back")
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	if m.chat.Sending() {
		b.WriteString(helpStyle.Render("The assistant is typing..."))
		b.WriteString("\n")
	}
	b.WriteString("> ")
	b.WriteString(m.input.View())

	return renderPage("ASSISTANT", b.String(), "enter: send │ pgup/pgdown: scroll │ esc: back")
}

// cmdSend shows the user's message at once, then waits for the reply.
func (m *ChatModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat
	done := make(chan error, 1)
	go func() {
		_, err := chat.Send(ctx, text)
		done <- err
	}()

	return tea.Sequence(
		// let Send record the user message before the first redraw
		tea.Tick(10*time.Millisecond, func(time.Time) tea.Msg { return chatReplyMsg{} }),
		func() tea.Msg { return chatReplyMsg{err: <-done} },
	)
}

func (m *ChatModel) refreshViewport() {
	m.viewport.SetContent(renderChat(m.chat.Messages(), m.viewport.Width))
	m.viewport.GotoBottom()
}

func renderChat(messages []models.ChatMessage, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width-4, 10))

	var b strings.Builder
	for _, msg := range messages {
		if msg.Role == models.ChatRoleUser {
			b.WriteString(userBubble.Render("You"))
		} else {
			b.WriteString(modelBubble.Render("Assistant"))
		}
		if msg.Timestamp > 0 {
			b.WriteString(helpStyle.Render("  " + time.UnixMilli(msg.Timestamp).Format("15:04")))
		}
		b.WriteString("\n")
		b.WriteString(wrap.Render(msg.Text()))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
