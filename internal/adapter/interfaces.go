// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the finance tracker
// client and its REST backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. The only implementation ([NewHTTPServerAdapter]) is built on resty
// and installs two hooks on every request: the bearer token is read from a
// [TokenProvider] at send time, and a 401 answer forces a session logout
// unless the session is in guest mode.
//
// Non-2xx answers are returned as [*APIError], which unwraps to the sentinel
// errors in errors.go so callers can use [errors.Is]. Bodies that cannot be
// decoded into the endpoint's result type are returned as [*DecodeError].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -destination=../mock/server_adapter_mock.go -package=mock . ServerAdapter

// TokenProvider yields the bearer token to attach to the next request.
// An empty token means the request is sent without Authorization.
type TokenProvider interface {
	AccessToken() string
}

// SessionGuard is the part of the session the adapter needs: the current
// token, the guest flag consulted on a 401, and the forced logout.
type SessionGuard interface {
	TokenProvider
	IsGuest() bool
	Logout(ctx context.Context) error
}

// AuthAPI is the authentication part of the backend.
type AuthAPI interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for tokens and the user record. A 401 here
	// means bad credentials and never triggers the forced logout.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout revokes refreshToken on the backend.
	Logout(ctx context.Context, refreshToken string) error

	// RefreshToken exchanges a refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (models.RefreshResponse, error)
}

// IncomeAPI covers the /income endpoints.
type IncomeAPI interface {
	ListIncome(ctx context.Context, params models.FetchParams) (models.Page[models.Income], error)
	CreateIncome(ctx context.Context, payload models.TransactionPayload) (models.Income, error)
	UpdateIncome(ctx context.Context, id int64, payload models.TransactionPayload) (models.Income, error)
	DeleteIncome(ctx context.Context, id int64) error
	IncomeCategories(ctx context.Context) ([]models.Category, error)
}

// OutcomeAPI covers the /outcome endpoints and the expense categories.
type OutcomeAPI interface {
	ListOutcome(ctx context.Context, params models.FetchParams) (models.Page[models.Outcome], error)
	CreateOutcome(ctx context.Context, payload models.TransactionPayload) (models.Outcome, error)
	UpdateOutcome(ctx context.Context, id int64, payload models.TransactionPayload) (models.Outcome, error)
	DeleteOutcome(ctx context.Context, id int64) error
	OutcomeCategories(ctx context.Context) ([]models.Category, error)
}

// InsightsAPI covers the dashboard and the AI assistant.
type InsightsAPI interface {
	DashboardSummary(ctx context.Context, params models.FetchParams) (models.DashboardSummary, error)
	Recommendations(ctx context.Context) (models.Recommendation, error)
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error)
}

// ProfileAPI covers user profile endpoints.
type ProfileAPI interface {
	// UploadAvatar sends the picture as the multipart field "profilePicture".
	UploadAvatar(ctx context.Context, filename string, picture io.Reader) (models.AvatarResponse, error)
}

// ServerAdapter is the full backend contract used by the client.
type ServerAdapter interface {
	AuthAPI
	IncomeAPI
	OutcomeAPI
	InsightsAPI
	ProfileAPI
}
