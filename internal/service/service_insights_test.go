// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestDashboardLoader_SetPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	d := NewDashboardLoader(api, loggedInSession(t, models.Tokens{AccessToken: "a"}), testAppConfig, logger.Nop())

	summary := models.DashboardSummary{TotalIncome: 10, TotalOutcome: 4, Balance: 6, Month: "2026-01"}
	api.EXPECT().DashboardSummary(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.FetchParams) (models.DashboardSummary, error) {
			assert.Equal(t, "2026-01-01", p.StartDate)
			assert.Equal(t, "2026-01-31", p.EndDate)
			return summary, nil
		},
	)

	require.NoError(t, d.SetPeriod(context.Background(), "2026-01-01", "2026-01-31"))

	state := d.State()
	require.NotNil(t, state.Value)
	assert.Equal(t, summary, *state.Value)
	assert.Equal(t, "2026-01-01", d.Period().StartDate)
}

func TestDashboardLoader_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	d := NewDashboardLoader(api, loggedInSession(t, models.Tokens{AccessToken: "a"}), testAppConfig, logger.Nop())

	api.EXPECT().DashboardSummary(gomock.Any(), gomock.Any()).Return(models.DashboardSummary{}, &adapter.APIError{StatusCode: 500})

	require.Error(t, d.Load(context.Background()))
	assert.Equal(t, app.MsgFetchDashboard, d.State().Err)
	assert.Nil(t, d.State().Value)
}

func TestDashboardLoader_Guest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	d := NewDashboardLoader(api, guestSession(t), testAppConfig, logger.Nop())

	require.NoError(t, d.Load(context.Background()))

	require.NotNil(t, d.State().Value)
	assert.Equal(t, DemoDashboard(), *d.State().Value)
}

func TestRecommendationLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	r := NewRecommendationLoader(api, loggedInSession(t, models.Tokens{AccessToken: "a"}), testAppConfig, logger.Nop())

	rec := models.Recommendation{Message: "Hi", Tips: []string{"save more"}}
	api.EXPECT().Recommendations(gomock.Any()).Return(rec, nil)

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, rec, *r.State().Value)
}

func TestRecommendationLoader_Guest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	r := NewRecommendationLoader(api, guestSession(t), testAppConfig, logger.Nop())

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, DemoRecommendation(), *r.State().Value)
}
