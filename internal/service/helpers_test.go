// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var testAppConfig = config.ClientApp{PageLimit: 10}

var testUser = models.User{ID: 7, Username: "rasul", Email: "rasul@example.com", Name: "Rasul"}

// newTestSession returns an initialized anonymous session.
func newTestSession(t *testing.T) *session.Manager {
	t.Helper()
	m := session.NewManager(store.NewMemoryStorage(), logger.Nop())
	m.Initialize(context.Background(), session.InitSignals{})
	return m
}

func loggedInSession(t *testing.T, tokens models.Tokens) *session.Manager {
	t.Helper()
	m := newTestSession(t)
	require.NoError(t, m.Login(context.Background(), tokens, testUser))
	return m
}

func guestSession(t *testing.T) *session.Manager {
	t.Helper()
	m := newTestSession(t)
	require.NoError(t, m.EnterGuestMode(context.Background()))
	return m
}

// jwtExpiringAt signs a token whose exp claim is at.
func jwtExpiringAt(t *testing.T, at time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(at),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}
