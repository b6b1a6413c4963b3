// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// showErrorMsg opens the error overlay with text.
type showErrorMsg struct {
	text string
}

func showError(text string) tea.Cmd {
	return func() tea.Msg { return showErrorMsg{text: text} }
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

// snapshotter is the read side of the session the router needs.
type snapshotter interface {
	Snapshot() session.Snapshot
}

// RootModel routes between pages:
//  1. keeps the active page and delegates every other message to it
//  2. handles ctrl+c, the about window and the error overlay
//  3. handles NavigateTo, refusing protected pages without a session
//  4. sends the user back to the login page when the session ends
type RootModel struct {
	pages       map[string]tea.Model
	current     string
	session     snapshotter
	buildInfo   models.AppBuildInfo
	onSignedOut func()

	quitByUser    bool
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

// NewRootModel registers pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, sess snapshotter, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		session:   sess,
		buildInfo: buildInfo,
	}
}

// OnSignedOut registers fn to run whenever the session becomes anonymous.
func (r RootModel) OnSignedOut(fn func()) RootModel {
	r.onSignedOut = fn
	return r
}

func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showError {
			if msg.String() == "enter" || msg.String() == "esc" {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		}
		if r.showBuildInfo {
			if msg.String() == "esc" || msg.String() == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if msg.String() == "v" && r.current == pageWelcome {
			r.showBuildInfo = true
			return r, nil
		}

	case showErrorMsg:
		r.showError = true
		r.errorOverlay.message = humanizeError(msg.text)
		return r, nil

	case NavigateTo:
		return r.navigate(msg)

	case sessionChangedMsg:
		return r.sessionChanged(msg.snap)
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	body := renderPage("DOMPET", "", "")
	if page := r.page(); page != nil {
		body = page.View()
	}
	if r.showError {
		body += "\n\n" + r.errorOverlay.View()
	}
	return appStyle.Render(body)
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	page := r.page()
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}
	if requiresSession(nav.Page) && !r.hasSession() {
		nav = NavigateTo{Page: pageLogin}
		next = r.pages[pageLogin]
		if next == nil {
			return r, nil
		}
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) sessionChanged(snap session.Snapshot) (tea.Model, tea.Cmd) {
	if snap.State != session.Anonymous {
		return r, nil
	}
	if r.onSignedOut != nil {
		r.onSignedOut()
	}
	if !requiresSession(r.current) {
		return r, nil
	}
	return r.navigate(NavigateTo{Page: pageLogin})
}

func (r RootModel) hasSession() bool {
	if r.session == nil {
		return false
	}
	snap := r.session.Snapshot()
	return snap.IsGuest || snap.IsAuthenticated()
}

// requiresSession reports whether page needs a logged-in or guest session.
func requiresSession(page string) bool {
	switch page {
	case pageWelcome, pageLogin, pageRegister:
		return false
	}
	return true
}
