// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the finance tracker, built on
// Bubble Tea. A [RootModel] routes between pages; every page reads its data
// from the services and runs their blocking calls as commands.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Session is what the TUI needs from the session manager: the controller
// used by pages plus change notifications.
type Session interface {
	service.SessionController
	Subscribe(fn func(session.Snapshot)) (cancel func())
}

type TUI struct {
	services  *service.ClientServices
	session   Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, sess Session, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   sess,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}
}

// Run shows the UI until the user quits. A restored or guest session opens
// the dashboard, anything else the welcome page. Session changes made
// elsewhere, such as a forced logout after a 401, are delivered to the
// running program.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	cancel := t.session.Subscribe(func(snap session.Snapshot) {
		go program.Send(sessionChangedMsg{snap: snap})
	})
	defer cancel()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageWelcome:         NewWelcomeModel(ctx, t.services.Auth),
		pageLogin:           NewLoginModel(ctx, t.services.Auth),
		pageRegister:        NewRegisterModel(ctx, t.services.Auth),
		pageDashboard:       NewDashboardModel(ctx, t.services, t.session),
		pageIncome:          NewIncomeModel(ctx, t.services, t.session),
		pageOutcome:         NewOutcomeModel(ctx, t.services, t.session),
		pageRecommendations: NewRecommendationsModel(ctx, t.services),
		pageChat:            NewChatModel(ctx, t.services),
		pageProfile:         NewProfileModel(ctx, t.services, t.session),
	}

	start := pageWelcome
	if snap := t.session.Snapshot(); snap.IsGuest || snap.IsAuthenticated() {
		start = pageDashboard
	}
	t.logger.Debug().Str("page", start).Msg("starting tui")

	chat := t.services.Chat
	categories := t.services.Categories
	return NewRootModel(pages, start, t.session, t.buildInfo).OnSignedOut(func() {
		chat.Reset()
		categories.Invalidate()
	})
}
