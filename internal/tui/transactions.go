// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/resource"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type transactionCollection[T resource.Record] interface {
	State() resource.State[T]
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetFilters(ctx context.Context, filters models.FetchParams) error
	GoToPage(ctx context.Context, n int) error
	Add(ctx context.Context, payload models.TransactionPayload) (T, error)
	Update(ctx context.Context, id int64, payload models.TransactionPayload) (T, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionsModel lists one page of income or expense records and hosts
// the add, edit, delete and filter actions.
type TransactionsModel[T resource.Record] struct {
	ctx          context.Context
	page         string
	kind         string
	coll         transactionCollection[T]
	categories   func(ctx context.Context) ([]models.Category, error)
	toRow        func(T) transactionRow
	needCategory bool
	session      service.SessionController

	cats    []models.Category
	idx     int
	status  string
	editor  *transactionForm
	period  *periodForm
	confirm *confirmModel
	pending int64
}

// NewIncomeModel returns the income page.
func NewIncomeModel(ctx context.Context, services *service.ClientServices, sess service.SessionController) *TransactionsModel[models.Income] {
	return &TransactionsModel[models.Income]{
		ctx:        ctx,
		page:       pageIncome,
		kind:       "income",
		coll:       services.Income,
		categories: services.Categories.Income,
		toRow:      incomeRow,
		session:    sess,
	}
}

// NewOutcomeModel returns the expense page. Expenses need a category.
func NewOutcomeModel(ctx context.Context, services *service.ClientServices, sess service.SessionController) *TransactionsModel[models.Outcome] {
	return &TransactionsModel[models.Outcome]{
		ctx:          ctx,
		page:         pageOutcome,
		kind:         "expense",
		coll:         services.Outcome,
		categories:   services.Categories.Outcome,
		toRow:        outcomeRow,
		needCategory: true,
		session:      sess,
	}
}

func (m *TransactionsModel[T]) Init() tea.Cmd {
	m.editor = nil
	m.period = nil
	m.confirm = nil
	m.status = ""
	return tea.Batch(m.cmdLoad(), m.cmdCategories())
}

func (m *TransactionsModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.page == m.page && msg.err == nil {
			m.cats = msg.categories
		}
		return m, nil

	case loadedMsg:
		if msg.page == m.page {
			m.clampCursor()
		}
		return m, nil

	case savedMsg:
		if msg.page != m.page {
			return m, nil
		}
		m.clampCursor()
		if m.editor != nil {
			m.editor.submitting = false
			if msg.err != "" {
				m.editor.errMsg = msg.err
				return m, nil
			}
			m.editor = nil
		}
		if msg.err != "" {
			return m, showError(msg.err)
		}
		m.status = "Saved."
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.confirm != nil:
			return m.updateConfirm(msg)
		case m.editor != nil:
			return m.updateEditor(msg)
		case m.period != nil:
			return m.updatePeriod(msg)
		}
		return m.updateList(msg)
	}

	if m.editor != nil {
		return m, m.editor.update(msg)
	}
	if m.period != nil {
		return m, m.period.update(msg)
	}
	return m, nil
}

func (m *TransactionsModel[T]) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.coll.State()

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDashboard)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(state.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		return m, m.cmdGoTo(state.Filters.CurrentPage() + 1)
	case key.Matches(msg, keys.prevPage):
		return m, m.cmdGoTo(state.Filters.CurrentPage() - 1)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.filter):
		m.period = newPeriodForm(state.Filters.StartDate, state.Filters.EndDate)
	case key.Matches(msg, keys.newItem):
		if m.session.IsGuest() {
			return m, showError(resource.GuestReadOnlyMessage)
		}
		m.editor = newTransactionForm(m.cats, m.needCategory, time.Now())
	case key.Matches(msg, keys.edit):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.session.IsGuest() {
			return m, showError(resource.GuestReadOnlyMessage)
		}
		m.editor = editTransactionForm(row, m.cats, m.needCategory)
	case key.Matches(msg, keys.delete):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{message: fmt.Sprintf("%s %s", m.label(row), formatAmount(row.amount))}
		m.pending = row.id
	}
	return m, nil
}

func (m *TransactionsModel[T]) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.pending
		m.confirm = nil
		m.pending = 0
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = nil
		m.pending = 0
	}
	return m, nil
}

func (m *TransactionsModel[T]) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editor = nil
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.editor.submitting {
			return m, nil
		}
		payload, err := m.editor.payload()
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.errMsg = ""
		m.editor.submitting = true
		return m, m.cmdSave(m.editor.editingID, payload)
	}
	return m, m.editor.update(msg)
}

func (m *TransactionsModel[T]) updatePeriod(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.period = nil
		return m, nil
	case key.Matches(msg, keys.enter):
		params, err := m.period.apply(m.coll.State().Filters)
		if err != nil {
			m.period.errMsg = err.Error()
			return m, nil
		}
		m.period = nil
		return m, m.cmdSetFilters(params)
	}
	return m, m.period.update(msg)
}

func (m *TransactionsModel[T]) View() string {
	title := strings.ToUpper(m.kind)
	if m.editor != nil {
		return renderPage(title, m.editor.view(m.kind), "tab: next field │ ↑/↓: category │ enter: save │ esc: cancel")
	}
	if m.period != nil {
		return renderPage(title, m.period.view(), "tab: next field │ enter: apply │ esc: cancel")
	}

	state := m.coll.State()
	var b strings.Builder
	if m.session.IsGuest() {
		b.WriteString(guestBadge.Render("GUEST MODE"))
		b.WriteString(" demo data, read-only\n\n")
	}
	fmt.Fprintf(&b, "Period: %s .. %s\n\n", state.Filters.StartDate, state.Filters.EndDate)

	switch {
	case state.Loading && len(state.Items) == 0:
		b.WriteString("Loading...\n")
	case len(state.Items) == 0 && state.Err == "":
		fmt.Fprintf(&b, "No %s records in this period.\n", m.kind)
	default:
		for i, item := range state.Items {
			row := m.toRow(item)
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-10s %-22s %-28s %s\n",
				cursor, models.ShortDate(row.date), fitText(m.label(row), 22), fitText(row.description, 28), formatAmount(row.amount))
		}
	}

	if p := state.Pagination; p != nil {
		fmt.Fprintf(&b, "\nPage %d of %d, %d records\n", p.CurrentPage, max(p.TotalPages, 1), p.TotalItems)
	}
	if state.Err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(state.Err))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	body := strings.TrimRight(b.String(), "\n")
	if m.confirm != nil {
		body += "\n\n" + m.confirm.View()
	}
	return renderPage(title, body, "n: new │ e: edit │ d: delete │ f: filter │ [/]: page │ r: reload │ esc: back")
}

// label is the record's category name, resolved from the loaded categories
// when the record only carries the id.
func (m *TransactionsModel[T]) label(row transactionRow) string {
	if row.category != models.Uncategorized {
		return row.category
	}
	return service.CategoryName(m.cats, row.categoryID)
}

func (m *TransactionsModel[T]) selected() (transactionRow, bool) {
	items := m.coll.State().Items
	if m.idx < 0 || m.idx >= len(items) {
		return transactionRow{}, false
	}
	return m.toRow(items[m.idx]), true
}

func (m *TransactionsModel[T]) clampCursor() {
	n := len(m.coll.State().Items)
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *TransactionsModel[T]) cmdLoad() tea.Cmd {
	return m.cmdFetch(m.coll.Load)
}

func (m *TransactionsModel[T]) cmdRefresh() tea.Cmd {
	return m.cmdFetch(m.coll.Refresh)
}

func (m *TransactionsModel[T]) cmdGoTo(n int) tea.Cmd {
	coll := m.coll
	return m.cmdFetch(func(ctx context.Context) error { return coll.GoToPage(ctx, n) })
}

func (m *TransactionsModel[T]) cmdSetFilters(params models.FetchParams) tea.Cmd {
	coll := m.coll
	return m.cmdFetch(func(ctx context.Context) error { return coll.SetFilters(ctx, params) })
}

func (m *TransactionsModel[T]) cmdFetch(fetch func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	page := m.page
	coll := m.coll
	return func() tea.Msg {
		_ = fetch(ctx)
		return loadedMsg{page: page, err: coll.State().Err}
	}
}

func (m *TransactionsModel[T]) cmdCategories() tea.Cmd {
	ctx := m.ctx
	page := m.page
	categories := m.categories
	return func() tea.Msg {
		cats, err := categories(ctx)
		return categoriesLoadedMsg{page: page, categories: cats, err: err}
	}
}

func (m *TransactionsModel[T]) cmdSave(id int64, payload models.TransactionPayload) tea.Cmd {
	ctx := m.ctx
	page := m.page
	coll := m.coll
	return func() tea.Msg {
		var err error
		if id != 0 {
			_, err = coll.Update(ctx, id, payload)
		} else {
			_, err = coll.Add(ctx, payload)
		}
		if err != nil {
			return savedMsg{page: page, err: coll.State().Err}
		}
		return savedMsg{page: page}
	}
}

func (m *TransactionsModel[T]) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	page := m.page
	coll := m.coll
	return func() tea.Msg {
		if err := coll.Delete(ctx, id); err != nil {
			return savedMsg{page: page, err: coll.State().Err}
		}
		return savedMsg{page: page}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
