// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// ProfileModel shows the user and uploads a new profile picture from a
// local file path.
type ProfileModel struct {
	ctx     context.Context
	profile *service.ProfileService
	session service.SessionController

	path      textinput.Model
	uploading bool
	errMsg    string
	status    string
}

func NewProfileModel(ctx context.Context, services *service.ClientServices, sess service.SessionController) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		profile: services.Profile,
		session: sess,
		path:    newInput("/path/to/picture.png", 60),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.errMsg = ""
	m.status = ""
	m.path.SetValue("")
	if !m.session.IsAuthenticated() {
		return nil
	}
	m.path.Focus()
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case avatarUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			m.errMsg = service.UploadErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile picture updated."
		m.path.SetValue("")
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.path.Blur()
			return m, navigate(pageDashboard)
		case key.Matches(msg, keys.enter):
			if m.uploading || !m.session.IsAuthenticated() {
				return m, nil
			}
			m.uploading = true
			m.errMsg = ""
			m.status = ""
			return m, m.cmdUpload(strings.TrimSpace(m.path.Value()))
		}
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	snap := m.session.Snapshot()
	if snap.IsGuest || snap.User == nil {
		return renderPage("PROFILE", app.MsgProfileGuest, "esc: back")
	}
	u := snap.User

	var b strings.Builder
	fmt.Fprintf(&b, "Name:     %s\n", u.Name)
	fmt.Fprintf(&b, "Username: %s\n", u.Username)
	fmt.Fprintf(&b, "Email:    %s\n", u.Email)
	avatar := u.AvatarURL
	if avatar == "" {
		avatar = "-"
	}
	fmt.Fprintf(&b, "Picture:  %s\n\n", avatar)

	b.WriteString("New picture (JPEG, PNG, GIF or WEBP, up to 5 MB)\n")
	b.WriteString("[")
	b.WriteString(m.path.View())
	b.WriteString("]\n")

	if m.uploading {
		b.WriteString("\n[Uploading...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "enter: upload │ esc: back")
}

func (m *ProfileModel) cmdUpload(path string) tea.Cmd {
	ctx := m.ctx
	profile := m.profile
	return func() tea.Msg {
		user, err := profile.UploadAvatarFile(ctx, path)
		return avatarUploadedMsg{user: user, err: err}
	}
}
