// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Register implements [AuthAPI]. POST /register.
func (h *HTTPServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	resp, err := h.credentialsRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return decode[models.RegisterResponse]("register", resp.Body())
}

// Login implements [AuthAPI]. POST /login. The response must carry an access
// token and a user, otherwise a [*DecodeError] is returned.
func (h *HTTPServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.credentialsRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return decode[models.LoginResponse]("login", resp.Body())
}

// Logout implements [AuthAPI]. POST /logout.
func (h *HTTPServerAdapter) Logout(ctx context.Context, refreshToken string) error {
	resp, err := h.credentialsRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LogoutRequest{RefreshToken: refreshToken}).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// RefreshToken implements [AuthAPI]. POST /refresh-token. A 401 here means
// the refresh token is no longer valid, which the caller handles.
func (h *HTTPServerAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	resp, err := h.credentialsRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/refresh-token")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}

	return decode[models.RefreshResponse]("refresh token", resp.Body())
}
