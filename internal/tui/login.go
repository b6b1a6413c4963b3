// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// LoginModel is the login screen. It renders the identifier and password
// inputs and runs the login on enter. On success it opens the dashboard.
type LoginModel struct {
	ctx  context.Context
	auth *service.AuthPresenter

	form       form
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel]; the identifier field has focus and
// the password is masked.
func NewLoginModel(ctx context.Context, auth *service.AuthPresenter) *LoginModel {
	identifier := newInput("username or email", 40)
	identifier.CharLimit = 100

	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(identifier, newPasswordInput("password")),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - authDoneMsg: opens the dashboard or shows the error
//   - registeredNotice: prefills the identifier after registration
//   - esc: back to the welcome page
//   - tab / shift+tab: focus
//   - enter: submit
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if !msg.ok {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.form.reset()
		return m, navigate(pageDashboard)

	case registeredNotice:
		m.form.reset()
		m.form.inputs[0].SetValue(msg.username)
		m.form.next()
		m.notice = "Registration successful. Please log in."
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			m.notice = ""
			m.auth.ClearError()
			return m, navigate(pageWelcome)
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			identifier := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if identifier == "" || password == "" {
				m.errMsg = "Username and password are required."
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(identifier, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.rows("Username", "Password"))

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(identifier, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		ok := auth.Login(ctx, identifier, password)
		return authDoneMsg{ok: ok, err: auth.Error(), username: identifier}
	}
}
