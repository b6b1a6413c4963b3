// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// TokenRefresher renews the access token through the refresh endpoint.
// Concurrent refreshes share one request.
type TokenRefresher struct {
	api     adapter.AuthAPI
	session SessionController
	logger  *logger.Logger
	now     func() time.Time

	group singleflight.Group
}

// NewTokenRefresher returns a TokenRefresher.
func NewTokenRefresher(api adapter.AuthAPI, session SessionController, log *logger.Logger) *TokenRefresher {
	return &TokenRefresher{api: api, session: session, logger: log.WithComponent("refresher"), now: time.Now}
}

// Refresh exchanges the refresh token for new tokens and stores them in the
// session.
func (r *TokenRefresher) Refresh(ctx context.Context) (models.Tokens, error) {
	v, err, shared := r.group.Do("refresh", func() (any, error) {
		return r.refresh(ctx)
	})
	if err != nil {
		return models.Tokens{}, err
	}
	if shared {
		r.logger.Debug().Msg("joined a running refresh")
	}
	return v.(models.Tokens), nil
}

// RefreshIfExpiring refreshes when the access token expires within
// threshold. Tokens without a readable expiry are left alone. It reports
// whether a refresh happened.
func (r *TokenRefresher) RefreshIfExpiring(ctx context.Context, threshold time.Duration) (bool, error) {
	snap := r.session.Snapshot()
	if !snap.IsAuthenticated() {
		return false, nil
	}
	if !snap.Tokens.ExpiresWithin(r.now(), threshold) {
		return false, nil
	}

	if _, err := r.Refresh(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *TokenRefresher) refresh(ctx context.Context) (models.Tokens, error) {
	refreshToken := r.session.RefreshToken()
	if refreshToken == "" {
		return models.Tokens{}, ErrNoRefreshToken
	}

	resp, err := r.api.RefreshToken(ctx, refreshToken)
	if err != nil {
		r.logger.Err(err).Str("func", "TokenRefresher.refresh").Msg("refresh request failed")
		return models.Tokens{}, err
	}

	tokens := models.Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	if err = r.session.SetTokens(ctx, tokens); err != nil && !errors.Is(err, session.ErrNotPersisted) {
		return models.Tokens{}, err
	}

	r.logger.Info().Msg("access token refreshed")
	return r.session.Snapshot().Tokens, nil
}
