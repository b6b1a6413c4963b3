// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// WelcomeModel is the start screen: login, registration or a read-only
// demo as guest.
type WelcomeModel struct {
	ctx  context.Context
	auth *service.AuthPresenter

	items  []string
	idx    int
	status string
}

func NewWelcomeModel(ctx context.Context, auth *service.AuthPresenter) *WelcomeModel {
	return &WelcomeModel{
		ctx:   ctx,
		auth:  auth,
		items: []string{"Log in", "Register", "Continue as guest"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.status = ""
		if !msg.ok {
			return m, showError(msg.err)
		}
		return m, navigate(pageDashboard)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			switch m.idx {
			case 0:
				return m, navigate(pageLogin)
			case 1:
				return m, navigate(pageRegister)
			default:
				m.status = "Entering demo mode..."
				return m, m.cmdGuest()
			}
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Track your income and expenses.\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("DOMPET", strings.TrimRight(b.String(), "\n"), "enter: select │ v: about │ q: quit")
}

func (m *WelcomeModel) cmdGuest() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		ok := auth.ContinueAsGuest(ctx)
		return authDoneMsg{ok: ok, err: auth.Error()}
	}
}
