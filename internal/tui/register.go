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
	"github.com/MKhiriev/go-finance-tracker/models"
)

// RegisterModel is the registration screen. After a successful
// registration it opens the login page with the username filled in.
type RegisterModel struct {
	ctx  context.Context
	auth *service.AuthPresenter

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth *service.AuthPresenter) *RegisterModel {
	username := newInput("username", 40)
	username.CharLimit = 50

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newInput("full name", 40),
			username,
			newInput("email", 40),
			newPasswordInput("password"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if !msg.ok {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: registeredNotice{username: msg.username}}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
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
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Name:     m.form.value(0),
				Username: m.form.value(1),
				Email:    m.form.value(2),
				Password: m.form.value(3),
			})
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.rows("Full name", "Username", "Email", "Password"))

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		ok := auth.Register(ctx, req)
		return authDoneMsg{ok: ok, err: auth.Error(), username: strings.TrimSpace(req.Username)}
	}
}
