// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// DashboardModel shows the totals of the selected period and the most
// recent transactions. It is the hub of the main screens.
type DashboardModel struct {
	ctx       context.Context
	dashboard *service.DashboardLoader
	auth      *service.AuthPresenter
	session   service.SessionController

	period    *periodForm
	loggedOut bool
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices, sess service.SessionController) *DashboardModel {
	return &DashboardModel{
		ctx:       ctx,
		dashboard: services.Dashboard,
		auth:      services.Auth,
		session:   sess,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loggedOut = false
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.period != nil {
		return m.updatePeriod(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.income):
		return m, navigate(pageIncome)
	case key.Matches(keyMsg, keys.outcome):
		return m, navigate(pageOutcome)
	case key.Matches(keyMsg, keys.recommendations):
		return m, navigate(pageRecommendations)
	case key.Matches(keyMsg, keys.chat):
		return m, navigate(pageChat)
	case key.Matches(keyMsg, keys.profile):
		return m, navigate(pageProfile)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.filter):
		p := m.dashboard.Period()
		m.period = newPeriodForm(p.StartDate, p.EndDate)
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *DashboardModel) updatePeriod(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.period = nil
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			params, err := m.period.apply(m.dashboard.Period())
			if err != nil {
				m.period.errMsg = err.Error()
				return m, nil
			}
			m.period = nil
			return m, m.cmdSetPeriod(params.StartDate, params.EndDate)
		}
	}
	return m, m.period.update(msg)
}

func (m *DashboardModel) View() string {
	snap := m.session.Snapshot()
	state := m.dashboard.State()

	var b strings.Builder
	switch {
	case snap.IsGuest:
		b.WriteString(guestBadge.Render("GUEST MODE"))
		b.WriteString(" demo data, read-only\n\n")
	case snap.User != nil:
		fmt.Fprintf(&b, "Hello, %s!\n\n", displayName(*snap.User))
	}

	period := m.dashboard.Period()
	fmt.Fprintf(&b, "Period: %s .. %s\n\n", period.StartDate, period.EndDate)

	switch {
	case state.Loading && state.Value == nil:
		b.WriteString("Loading...\n")
	case state.Err != "":
		b.WriteString(errorStyle.Render(state.Err))
		b.WriteString("\n")
	case state.Value != nil:
		b.WriteString(renderSummary(*state.Value))
	}

	if m.period != nil {
		b.WriteString("\n")
		b.WriteString(m.period.view())
		return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: apply │ esc: cancel")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"i: income │ o: expenses │ t: tips │ a: assistant │ p: profile │ f: period │ r: reload │ L: log out │ q: quit")
}

func renderSummary(s models.DashboardSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income:   %s\n", incomeStyle.Render(formatAmount(s.TotalIncome)))
	fmt.Fprintf(&b, "Expenses: %s\n", outcomeStyle.Render(formatAmount(s.TotalOutcome)))
	fmt.Fprintf(&b, "Balance:  %s\n", formatAmount(s.Balance))

	b.WriteString("\nRecent transactions\n")
	if len(s.RecentTransactions) == 0 {
		b.WriteString("  none\n")
		return b.String()
	}
	for _, t := range s.RecentTransactions {
		amount := incomeStyle.Render("+" + formatAmount(t.Amount))
		if t.Type == models.TransactionOutcome {
			amount = outcomeStyle.Render("-" + formatAmount(t.Amount))
		}
		fmt.Fprintf(&b, "  %-10s %-22s %-28s %s\n",
			models.ShortDate(t.Date), fitText(t.CategoryName(), 22), fitText(t.Description, 28), amount)
	}
	return b.String()
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	d := m.dashboard
	return func() tea.Msg {
		_ = d.Load(ctx)
		return loadedMsg{page: pageDashboard, err: d.State().Err}
	}
}

func (m *DashboardModel) cmdSetPeriod(start, end string) tea.Cmd {
	ctx := m.ctx
	d := m.dashboard
	return func() tea.Msg {
		_ = d.SetPeriod(ctx, start, end)
		return loadedMsg{page: pageDashboard, err: d.State().Err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	if m.loggedOut {
		return nil
	}
	m.loggedOut = true
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		auth.Logout(ctx)
		return nil
	}
}
