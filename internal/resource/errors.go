// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// GuestReadOnlyMessage is the state error set by a write attempted in guest
// mode.
const GuestReadOnlyMessage = "Guest mode is read-only. Please register or login."

var (
	// ErrGuestReadOnly is returned by writes in guest mode. No request is
	// sent.
	ErrGuestReadOnly = errors.New("guest mode is read-only")

	// ErrNoFetcher is returned by Single.Load when no fetch function was
	// configured.
	ErrNoFetcher = errors.New("resource has no fetch function")
)

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func resourceLogger(log *logger.Logger, name string) *logger.Logger {
	return &logger.Logger{Logger: log.WithComponent("resource").With().Str("resource", name).Logger()}
}
