// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

var errAmountNotNumber = errors.New("Amount must be a number.")

// transactionRow is the part of an income or expense record the pages show.
type transactionRow struct {
	id          int64
	amount      float64
	date        string
	description string
	category    string
	categoryID  *int64
}

func incomeRow(in models.Income) transactionRow {
	return transactionRow{
		id:          in.ID,
		amount:      in.Amount,
		date:        in.Date,
		description: in.Description,
		category:    in.CategoryName(),
		categoryID:  in.CategoryID,
	}
}

func outcomeRow(out models.Outcome) transactionRow {
	return transactionRow{
		id:          out.ID,
		amount:      out.Amount,
		date:        out.Date,
		description: out.Description,
		category:    out.CategoryName(),
		categoryID:  out.CategoryID,
	}
}

// transactionForm adds or edits one record. up/down pick the category.
type transactionForm struct {
	form       form
	editingID  int64
	categories []models.Category
	// catIdx indexes categories; -1 means none.
	catIdx       int
	needCategory bool
	submitting   bool
	errMsg       string
}

func newTransactionForm(categories []models.Category, needCategory bool, now time.Time) *transactionForm {
	amount := newInput("150000", 20)
	amount.CharLimit = 18

	f := &transactionForm{
		form:         newForm(amount, newInput(models.DateLayout, 12), newInput("description", 40)),
		categories:   categories,
		catIdx:       -1,
		needCategory: needCategory,
	}
	f.form.inputs[1].SetValue(now.Format(models.DateLayout))
	if needCategory && len(categories) > 0 {
		f.catIdx = 0
	}
	return f
}

func editTransactionForm(row transactionRow, categories []models.Category, needCategory bool) *transactionForm {
	f := newTransactionForm(categories, needCategory, time.Now())
	f.editingID = row.id
	f.form.inputs[0].SetValue(strconv.FormatFloat(row.amount, 'f', -1, 64))
	f.form.inputs[1].SetValue(models.ShortDate(row.date))
	f.form.inputs[2].SetValue(row.description)
	if row.categoryID != nil {
		for i, c := range categories {
			if c.ID == *row.categoryID {
				f.catIdx = i
			}
		}
	}
	return f
}

func (f *transactionForm) editing() bool {
	return f.editingID != 0
}

// payload builds the request body. Amount and date rules are checked by the
// collection.
func (f *transactionForm) payload() (models.TransactionPayload, error) {
	raw := strings.TrimSpace(f.form.value(0))
	amount, err := strconv.ParseFloat(raw, 64)
	if raw != "" && err != nil {
		return models.TransactionPayload{}, errAmountNotNumber
	}

	p := models.TransactionPayload{
		Amount:      amount,
		Date:        strings.TrimSpace(f.form.value(1)),
		Description: strings.TrimSpace(f.form.value(2)),
	}
	if f.catIdx >= 0 && f.catIdx < len(f.categories) {
		id := f.categories[f.catIdx].ID
		p.CategoryID = &id
	}
	return p, nil
}

func (f *transactionForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.form.next()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.form.prev()
			return nil
		case keyMsg.Type == tea.KeyUp:
			f.moveCategory(-1)
			return nil
		case keyMsg.Type == tea.KeyDown:
			f.moveCategory(1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.form.inputs[f.form.focus], cmd = f.form.inputs[f.form.focus].Update(msg)
	return cmd
}

func (f *transactionForm) moveCategory(delta int) {
	lowest := -1
	if f.needCategory {
		lowest = 0
	}
	n := f.catIdx + delta
	if n < lowest || n >= len(f.categories) {
		return
	}
	f.catIdx = n
}

func (f *transactionForm) categoryLabel() string {
	if f.catIdx < 0 || f.catIdx >= len(f.categories) {
		return models.Uncategorized
	}
	return f.categories[f.catIdx].Name
}

func (f *transactionForm) view(kind string) string {
	title := "New " + kind
	if f.editing() {
		title = fmt.Sprintf("Edit %s #%d", kind, f.editingID)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(f.form.rows("Amount", "Date", "Description"))
	fmt.Fprintf(&b, "Category    │ < %s >\n", f.categoryLabel())

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
