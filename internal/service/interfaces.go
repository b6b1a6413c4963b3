// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -destination=../mock/session_controller_mock.go -package=mock . SessionController

// SessionController is the session capability the services work with.
// [*session.Manager] implements it.
type SessionController interface {
	Snapshot() session.Snapshot
	IsGuest() bool
	IsAuthenticated() bool
	AccessToken() string
	RefreshToken() string

	Login(ctx context.Context, tokens models.Tokens, user models.User) error
	Logout(ctx context.Context) error
	EnterGuestMode(ctx context.Context) error
	UpdateUserContext(ctx context.Context, patch models.UserPatch) error
	SetTokens(ctx context.Context, tokens models.Tokens) error
}

// Job is a background task that runs until stopped.
type Job interface {
	// Start launches the job. A running job is stopped first.
	Start(ctx context.Context)
	// Stop cancels the job and waits for it to exit. It is safe to call on a
	// job that is not running.
	Stop()
}
