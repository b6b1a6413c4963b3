// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"sync"
)

// MemoryStorage is an in-process [LocalStorage]. Nothing survives a restart;
// it backs tests and runs where no database file is wanted.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage returns an empty [MemoryStorage].
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return v, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	return s.Apply(ctx, Mutation{Set: map[string]string{key: value}})
}

func (s *MemoryStorage) Remove(ctx context.Context, keys ...string) error {
	return s.Apply(ctx, Mutation{Remove: keys})
}

func (s *MemoryStorage) Apply(ctx context.Context, m Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for k := range m.Set {
		if k == "" {
			return ErrEmptyKey
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.items, m.Set)
	for _, k := range m.Remove {
		delete(s.items, k)
	}
	return nil
}

// Snapshot returns a copy of all stored items.
func (s *MemoryStorage) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.items)
}
