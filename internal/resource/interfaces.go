// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource keeps server-backed data for the UI: paginated record
// collections ([Collection]) and single values ([Single]).
//
// Both share one pattern. Every fetch gets a sequence number and only the
// latest issued fetch may write state, so rapid filter changes end with the
// result of the last request. In guest mode no request is sent: a fixed demo
// value is returned after a short delay, and writes fail with
// [ErrGuestReadOnly].
package resource

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Record is an item with a backend identifier.
type Record interface {
	RecordID() int64
}

// Backend is the server side of one record collection. P is the payload of
// create and update requests.
type Backend[T Record, P any] interface {
	List(ctx context.Context, params models.FetchParams) (models.Page[T], error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id int64, payload P) (T, error)
	Delete(ctx context.Context, id int64) error
}

// GuestChecker reports whether the session is in guest mode. It is asked on
// every operation, so a session change applies to the next call.
type GuestChecker interface {
	IsGuest() bool
}

// BackendFuncs adapts plain functions to [Backend].
type BackendFuncs[T Record, P any] struct {
	ListFunc   func(ctx context.Context, params models.FetchParams) (models.Page[T], error)
	CreateFunc func(ctx context.Context, payload P) (T, error)
	UpdateFunc func(ctx context.Context, id int64, payload P) (T, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (b BackendFuncs[T, P]) List(ctx context.Context, params models.FetchParams) (models.Page[T], error) {
	return b.ListFunc(ctx, params)
}

func (b BackendFuncs[T, P]) Create(ctx context.Context, payload P) (T, error) {
	return b.CreateFunc(ctx, payload)
}

func (b BackendFuncs[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	return b.UpdateFunc(ctx, id, payload)
}

func (b BackendFuncs[T, P]) Delete(ctx context.Context, id int64) error {
	return b.DeleteFunc(ctx, id)
}
