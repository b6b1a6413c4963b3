// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens is the pair of bearer credentials issued by the backend on login
// and renewed through the refresh endpoint.
//
// The client never verifies token signatures: it has no signing key and the
// backend is the only authority. Claims are read only to schedule refreshes.
type Tokens struct {
	// AccessToken is attached as "Authorization: Bearer <token>" to every
	// outgoing request.
	AccessToken string `json:"accessToken"`

	// RefreshToken is exchanged for a new access token and revoked on logout.
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Normalize returns a copy of t with surrounding whitespace removed.
func (t Tokens) Normalize() Tokens {
	return Tokens{
		AccessToken:  strings.TrimSpace(t.AccessToken),
		RefreshToken: strings.TrimSpace(t.RefreshToken),
	}
}

// AccessExpiry extracts the "exp" claim of the access token without
// verifying the signature. ok is false when the token is not a JWT or has no
// expiry claim; opaque tokens are therefore never refreshed proactively.
func (t Tokens) AccessExpiry() (expiresAt time.Time, ok bool) {
	if t.AccessToken == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, &claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// ExpiresWithin reports whether the access token expires before now+window.
// Tokens without a readable expiry never expire from the client's view.
func (t Tokens) ExpiresWithin(now time.Time, window time.Duration) bool {
	exp, ok := t.AccessExpiry()
	if !ok {
		return false
	}
	return !exp.After(now.Add(window))
}

// String hides the token values so Tokens can be logged safely.
func (t Tokens) String() string {
	return fmt.Sprintf("Tokens{access:%t refresh:%t}", t.AccessToken != "", t.RefreshToken != "")
}
