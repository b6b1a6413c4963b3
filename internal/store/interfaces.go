// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

// LocalStorage is the client's durable key-value store. It keeps the
// persisted session (tokens, cached user, guest flag) across restarts.
//
// Get returns [ErrItemNotFound] for keys that were never set or were removed.
// Remove of an absent key is not an error.
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	// Apply performs all writes and removals of m atomically.
	Apply(ctx context.Context, m Mutation) error
}

// Mutation is a batch of writes applied as one unit by [LocalStorage.Apply].
// Removals are applied after writes, so a key present in both ends up absent.
type Mutation struct {
	Set    map[string]string
	Remove []string
}

// IsEmpty reports whether the mutation changes nothing.
func (m Mutation) IsEmpty() bool {
	return len(m.Set) == 0 && len(m.Remove) == 0
}
