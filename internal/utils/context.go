// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport and service
// layers: typed context keys, the resty client wrapper and request ID
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// RequestIDCtxKey carries the X-Request-ID of an outgoing request.
	RequestIDCtxKey = contextKey("requestID")

	// CredentialsCheckCtxKey marks requests whose 401 answer means "wrong
	// credentials" rather than "session expired" (login, register).
	CredentialsCheckCtxKey = contextKey("credentialsCheck")
)

// WithRequestID returns a copy of ctx carrying id as the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request ID stored in ctx, if any.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// WithCredentialsCheck marks ctx as a credentials check.
func WithCredentialsCheck(ctx context.Context) context.Context {
	return context.WithValue(ctx, CredentialsCheckCtxKey, true)
}

// IsCredentialsCheck reports whether ctx was marked by [WithCredentialsCheck].
func IsCredentialsCheck(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(CredentialsCheckCtxKey).(bool)
	return v
}
