// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/resource"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// DashboardLoader keeps the dashboard summary of a selected period.
type DashboardLoader struct {
	*resource.Single[models.DashboardSummary]

	mu     sync.Mutex
	params models.FetchParams
}

// NewDashboardLoader returns a loader for the current month.
func NewDashboardLoader(api adapter.InsightsAPI, guest resource.GuestChecker, cfg config.ClientApp, log *logger.Logger) *DashboardLoader {
	d := &DashboardLoader{params: models.DefaultFetchParams(time.Now(), cfg.PageLimit)}
	d.Single = resource.NewSingle(func(ctx context.Context) (models.DashboardSummary, error) {
		return api.DashboardSummary(ctx, d.Period())
	}, guest, resource.SingleOptions[models.DashboardSummary]{
		Name:          "dashboard",
		FallbackError: app.MsgFetchDashboard,
		Demo:          DemoDashboard,
		DemoDelay:     cfg.DemoDelay,
	}, log)
	return d
}

// Period returns the selected query.
func (d *DashboardLoader) Period() models.FetchParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params
}

// SetPeriod selects another date range and reloads.
func (d *DashboardLoader) SetPeriod(ctx context.Context, start, end string) error {
	d.mu.Lock()
	d.params = d.params.WithDateRange(start, end)
	d.mu.Unlock()

	return d.Load(ctx)
}

// RecommendationLoader keeps the AI tips.
type RecommendationLoader = resource.Single[models.Recommendation]

// NewRecommendationLoader returns a loader of the AI tips.
func NewRecommendationLoader(api adapter.InsightsAPI, guest resource.GuestChecker, cfg config.ClientApp, log *logger.Logger) *RecommendationLoader {
	return resource.NewSingle(api.Recommendations, guest, resource.SingleOptions[models.Recommendation]{
		Name:          "recommendations",
		FallbackError: app.MsgFetchRecommendations,
		Demo:          DemoRecommendation,
		DemoDelay:     cfg.DemoDelay,
	}, log)
}
