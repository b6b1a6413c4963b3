// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the body returned by POST /register.
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// Validate implements the boundary check performed by the adapter. A
// registration response carries no mandatory fields.
func (r RegisterResponse) Validate() error {
	return nil
}

// LoginRequest is the body of POST /login. Identifier is either a username
// or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// Tokens returns the token pair carried by the response.
func (r LoginResponse) Tokens() Tokens {
	return Tokens{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}.Normalize()
}

// Validate reports a wrapped [ErrMissingField] when the access token or the
// user record is absent. A partial login response must never reach the
// session store.
func (r LoginResponse) Validate() error {
	if r.Tokens().AccessToken == "" {
		return fmt.Errorf("%w: accessToken", ErrMissingField)
	}
	if r.User == nil || r.User.IsZero() {
		return fmt.Errorf("%w: user", ErrMissingField)
	}
	return nil
}

// LogoutRequest is the body of POST /logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest is the body of POST /refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse is the body returned by POST /refresh-token. The backend
// may rotate the refresh token; when it does not, RefreshToken is empty.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Validate requires a new access token.
func (r RefreshResponse) Validate() error {
	if r.AccessToken == "" {
		return fmt.Errorf("%w: accessToken", ErrMissingField)
	}
	return nil
}

// MessageResponse is the generic {message} acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Validate implements the boundary check; the message is informational.
func (r MessageResponse) Validate() error {
	return nil
}

// AvatarResponse is the body returned by POST /users/profile-picture.
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
	User      *User  `json:"user,omitempty"`
}

// Validate requires the URL of the stored picture.
func (r AvatarResponse) Validate() error {
	if r.AvatarURL == "" {
		return fmt.Errorf("%w: avatarUrl", ErrMissingField)
	}
	return nil
}
