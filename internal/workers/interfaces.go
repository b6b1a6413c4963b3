// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs for the lifetime of
// the terminal session.
package workers

import "context"

// Worker is a background job. Start must not block; Stop waits until the
// job has returned.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
