// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's use cases: the auth presenter, the
// income and expense collections, categories, the dashboard, the AI
// assistant, the profile and token refresh. Services read and change the
// session only through [SessionController] and reach the backend only
// through the adapter interfaces.
package service

import (
	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// ClientServices aggregates every service the UI uses.
type ClientServices struct {
	Auth            *AuthPresenter
	Income          *IncomeCollection
	Outcome         *OutcomeCollection
	Categories      *CategoryService
	Dashboard       *DashboardLoader
	Recommendations *RecommendationLoader
	Chat            *ChatService
	Profile         *ProfileService
	Refresher       *TokenRefresher
	RefreshJob      Job
}

// NewClientServices wires all services to one backend and one session.
func NewClientServices(serverAdapter adapter.ServerAdapter, session SessionController, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	refresher := NewTokenRefresher(serverAdapter, session, log)

	return &ClientServices{
		Auth:            NewAuthPresenter(serverAdapter, session, log),
		Income:          NewIncomeCollection(serverAdapter, session, cfg.App, log),
		Outcome:         NewOutcomeCollection(serverAdapter, session, cfg.App, log),
		Categories:      NewCategoryService(serverAdapter, serverAdapter, session, log),
		Dashboard:       NewDashboardLoader(serverAdapter, session, cfg.App, log),
		Recommendations: NewRecommendationLoader(serverAdapter, session, cfg.App, log),
		Chat:            NewChatService(serverAdapter, session, log),
		Profile:         NewProfileService(serverAdapter, session, log),
		Refresher:       refresher,
		RefreshJob:      NewRefreshJob(refresher, cfg.Workers.RefreshInterval, cfg.Workers.RefreshThreshold, log),
	}
}
