// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var refreshNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRefresher(t *testing.T, sess SessionController) (*TokenRefresher, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	r := NewTokenRefresher(api, sess, logger.Nop())
	r.now = func() time.Time { return refreshNow }
	return r, api
}

func TestTokenRefresher_Refresh(t *testing.T) {
	sess := loggedInSession(t, models.Tokens{AccessToken: "old", RefreshToken: "r1"})
	r, api := newTestRefresher(t, sess)

	api.EXPECT().RefreshToken(gomock.Any(), "r1").Return(models.RefreshResponse{AccessToken: "new"}, nil)

	tokens, err := r.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Tokens{AccessToken: "new", RefreshToken: "r1"}, tokens)
	assert.Equal(t, "new", sess.AccessToken())
}

func TestTokenRefresher_RotatesRefreshToken(t *testing.T) {
	sess := loggedInSession(t, models.Tokens{AccessToken: "old", RefreshToken: "r1"})
	r, api := newTestRefresher(t, sess)

	api.EXPECT().RefreshToken(gomock.Any(), "r1").Return(models.RefreshResponse{AccessToken: "new", RefreshToken: "r2"}, nil)

	_, err := r.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "r2", sess.RefreshToken())
}

func TestTokenRefresher_Errors(t *testing.T) {
	t.Run("no refresh token", func(t *testing.T) {
		r, _ := newTestRefresher(t, loggedInSession(t, models.Tokens{AccessToken: "a"}))

		_, err := r.Refresh(context.Background())
		require.ErrorIs(t, err, ErrNoRefreshToken)
	})

	t.Run("rejected", func(t *testing.T) {
		sess := loggedInSession(t, models.Tokens{AccessToken: "a", RefreshToken: "r1"})
		r, api := newTestRefresher(t, sess)
		api.EXPECT().RefreshToken(gomock.Any(), "r1").Return(models.RefreshResponse{}, &adapter.APIError{StatusCode: 401})

		_, err := r.Refresh(context.Background())

		require.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Equal(t, "a", sess.AccessToken())
		assert.Equal(t, session.Authenticated, sess.State())
	})
}

func TestTokenRefresher_ConcurrentCallsShareRequest(t *testing.T) {
	sess := loggedInSession(t, models.Tokens{AccessToken: "old", RefreshToken: "r1"})
	r, api := newTestRefresher(t, sess)

	release := make(chan struct{})
	entered := make(chan struct{})
	api.EXPECT().RefreshToken(gomock.Any(), "r1").DoAndReturn(
		func(context.Context, string) (models.RefreshResponse, error) {
			close(entered)
			<-release
			return models.RefreshResponse{AccessToken: "new"}, nil
		},
	).Times(1)

	var wg sync.WaitGroup
	results := make([]models.Tokens, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = r.Refresh(context.Background())
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = r.Refresh(context.Background())
	}()
	// give the second caller time to join the running flight
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, "new", results[0].AccessToken)
	assert.Equal(t, "new", results[1].AccessToken)
}

func TestTokenRefresher_RefreshIfExpiring(t *testing.T) {
	tests := []struct {
		name          string
		access        string
		wantRefreshed bool
	}{
		{name: "expires soon", access: "soon", wantRefreshed: true},
		{name: "already expired", access: "expired", wantRefreshed: true},
		{name: "valid for long", access: "later", wantRefreshed: false},
		{name: "not a jwt", access: "opaque", wantRefreshed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := map[string]string{
				"soon":    jwtExpiringAt(t, refreshNow.Add(time.Minute)),
				"expired": jwtExpiringAt(t, refreshNow.Add(-time.Minute)),
				"later":   jwtExpiringAt(t, refreshNow.Add(time.Hour)),
				"opaque":  "opaque-token",
			}[tt.access]

			sess := loggedInSession(t, models.Tokens{AccessToken: access, RefreshToken: "r1"})
			r, api := newTestRefresher(t, sess)
			if tt.wantRefreshed {
				api.EXPECT().RefreshToken(gomock.Any(), "r1").Return(models.RefreshResponse{AccessToken: "new"}, nil)
			}

			refreshed, err := r.RefreshIfExpiring(context.Background(), 2*time.Minute)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRefreshed, refreshed)
		})
	}
}

func TestTokenRefresher_RefreshIfExpiring_Guest(t *testing.T) {
	r, _ := newTestRefresher(t, guestSession(t))

	refreshed, err := r.RefreshIfExpiring(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.False(t, refreshed)
}
