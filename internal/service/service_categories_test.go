// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestCategoryService_CachesPerOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	sess := loggedInSession(t, models.Tokens{AccessToken: "a"})
	svc := NewCategoryService(api, api, sess, logger.Nop())
	ctx := context.Background()

	cats := []models.Category{{ID: 1, Name: "Salary"}}
	api.EXPECT().IncomeCategories(gomock.Any()).Return(cats, nil).Times(2)

	got, err := svc.Income(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, got)

	// cached
	_, err = svc.Income(ctx)
	require.NoError(t, err)

	// another user fetches again
	require.NoError(t, sess.Logout(ctx))
	require.NoError(t, sess.Login(ctx, models.Tokens{AccessToken: "b"}, models.User{ID: 8, Username: "other"}))
	_, err = svc.Income(ctx)
	require.NoError(t, err)
}

func TestCategoryService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	sess := loggedInSession(t, models.Tokens{AccessToken: "a"})
	svc := NewCategoryService(api, api, sess, logger.Nop())
	ctx := context.Background()

	api.EXPECT().OutcomeCategories(gomock.Any()).Return([]models.Category{{ID: 2, Name: "Rent"}}, nil).Times(2)

	_, err := svc.Outcome(ctx)
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Outcome(ctx)
	require.NoError(t, err)
}

func TestCategoryService_ErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	sess := loggedInSession(t, models.Tokens{AccessToken: "a"})
	svc := NewCategoryService(api, api, sess, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().IncomeCategories(gomock.Any()).Return(nil, errors.New("timeout")),
		api.EXPECT().IncomeCategories(gomock.Any()).Return([]models.Category{{ID: 1}}, nil),
	)

	_, err := svc.Income(ctx)
	require.Error(t, err)
	got, err := svc.Income(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCategoryService_Guest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewCategoryService(api, api, guestSession(t), logger.Nop())
	ctx := context.Background()

	in, err := svc.Income(ctx)
	require.NoError(t, err)
	out, err := svc.Outcome(ctx)
	require.NoError(t, err)

	assert.Len(t, in, 4)
	assert.Len(t, out, 5)
	assert.Equal(t, "Salary (Demo)", in[0].Name)

	// callers get copies
	in[0].Name = "changed"
	again, _ := svc.Income(ctx)
	assert.Equal(t, "Salary (Demo)", again[0].Name)
}

func TestCategoryName(t *testing.T) {
	id := int64(802)
	missing := int64(1)

	assert.Equal(t, "Housing (Demo)", CategoryName(demoOutcomeCategories, &id))
	assert.Equal(t, models.Uncategorized, CategoryName(demoOutcomeCategories, &missing))
	assert.Equal(t, models.Uncategorized, CategoryName(demoOutcomeCategories, nil))
}
