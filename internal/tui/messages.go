// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Page names used with [NavigateTo].
const (
	pageWelcome         = "welcome"
	pageLogin           = "login"
	pageRegister        = "register"
	pageDashboard       = "dashboard"
	pageIncome          = "income"
	pageOutcome         = "outcome"
	pageRecommendations = "recommendations"
	pageChat            = "chat"
	pageProfile         = "profile"
)

// NavigateTo asks the root model to switch to Page. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// sessionChangedMsg carries a session snapshot published by the manager.
type sessionChangedMsg struct {
	snap session.Snapshot
}

// authDoneMsg reports the end of a login, registration or guest request.
type authDoneMsg struct {
	ok       bool
	err      string
	username string
}

// registeredNotice is sent to the login page after a registration.
type registeredNotice struct {
	username string
}

// loadedMsg reports that a page's data finished loading. err is the error
// text to show, if any.
type loadedMsg struct {
	page string
	err  string
}

// categoriesLoadedMsg delivers the categories of a transaction page.
type categoriesLoadedMsg struct {
	page       string
	categories []models.Category
	err        error
}

// savedMsg reports a finished create, update or delete.
type savedMsg struct {
	page string
	err  string
}

type chatReplyMsg struct {
	err error
}

type avatarUploadedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
