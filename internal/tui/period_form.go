// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// periodForm edits a start/end date range.
type periodForm struct {
	form   form
	errMsg string
}

func newPeriodForm(start, end string) *periodForm {
	f := newForm(newInput(models.DateLayout, 12), newInput(models.DateLayout, 12))
	f.inputs[0].SetValue(start)
	f.inputs[1].SetValue(end)
	return &periodForm{form: f}
}

// apply returns base with the entered range, or the validation error.
func (p *periodForm) apply(base models.FetchParams) (models.FetchParams, error) {
	params := base.WithDateRange(strings.TrimSpace(p.form.value(0)), strings.TrimSpace(p.form.value(1)))
	if err := params.Validate(); err != nil {
		return base, err
	}
	return params, nil
}

func (p *periodForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			p.form.next()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			p.form.prev()
			return nil
		}
	}

	var cmd tea.Cmd
	p.form.inputs[p.form.focus], cmd = p.form.inputs[p.form.focus].Update(msg)
	return cmd
}

func (p *periodForm) view() string {
	out := "Filter by date\n" + p.form.rows("From", "To")
	if p.errMsg != "" {
		out += "\n" + errorStyle.Render(p.errMsg) + "\n"
	}
	return out
}
