// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// RecommendationsModel shows the AI tips and copies them to the clipboard.
type RecommendationsModel struct {
	ctx    context.Context
	loader *service.RecommendationLoader
	status string
}

func NewRecommendationsModel(ctx context.Context, services *service.ClientServices) *RecommendationsModel {
	return &RecommendationsModel{ctx: ctx, loader: services.Recommendations}
}

func (m *RecommendationsModel) Init() tea.Cmd {
	m.status = ""
	ctx := m.ctx
	loader := m.loader
	return func() tea.Msg {
		_ = loader.Load(ctx)
		return loadedMsg{page: pageRecommendations, err: loader.State().Err}
	}
}

func (m *RecommendationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			return m, showError(fmt.Sprintf("copy to clipboard: %v", msg.err))
		}
		m.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.copy):
			state := m.loader.State()
			if state.Value == nil {
				return m, nil
			}
			return m, cmdCopyToClipboard(state.Value.Text())
		}
	}
	return m, nil
}

func (m *RecommendationsModel) View() string {
	state := m.loader.State()

	var b strings.Builder
	switch {
	case state.Loading && state.Value == nil:
		b.WriteString("Asking the assistant...\n")
	case state.Err != "":
		b.WriteString(errorStyle.Render(state.Err))
		b.WriteString("\n")
	case state.Value != nil:
		b.WriteString(state.Value.Message)
		b.WriteString("\n\n")
		for i, tip := range state.Value.Tips {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
		}
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("TIPS", strings.TrimRight(b.String(), "\n"), "c: copy │ r: reload │ esc: back")
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
