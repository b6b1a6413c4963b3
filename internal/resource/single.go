// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// SingleState is a copy of a [Single]'s value.
type SingleState[T any] struct {
	// Value is nil until the first successful load and after an error.
	Value   *T
	Loading bool
	Err     string
}

// SingleOptions configure a [Single].
type SingleOptions[T any] struct {
	Name          string
	FallbackError string
	// Demo returns the guest-mode value.
	Demo      func() T
	DemoDelay time.Duration
}

// Single is a server-backed value such as the dashboard summary. It follows
// the same guest and stale-response rules as [Collection].
type Single[T any] struct {
	fetcher func(ctx context.Context) (T, error)
	session GuestChecker
	opts    SingleOptions[T]
	logger  *logger.Logger

	mu    sync.Mutex
	seq   uint64
	state SingleState[T]
}

// NewSingle returns an empty Single loading its value through fetcher.
func NewSingle[T any](fetcher func(ctx context.Context) (T, error), session GuestChecker, opts SingleOptions[T], log *logger.Logger) *Single[T] {
	if opts.FallbackError == "" {
		opts.FallbackError = "Failed to load data."
	}
	return &Single[T]{
		fetcher: fetcher,
		session: session,
		opts:    opts,
		logger:  resourceLogger(log, opts.Name),
	}
}

// State returns a copy of the current state.
func (s *Single[T]) State() SingleState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if s.state.Value != nil {
		v := *s.state.Value
		st.Value = &v
	}
	return st
}

// Load fetches the value, or the demo value in guest mode.
func (s *Single[T]) Load(ctx context.Context) error {
	if s.fetcher == nil {
		return ErrNoFetcher
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	if s.session.IsGuest() {
		if err := sleep(ctx, s.opts.DemoDelay); err != nil {
			s.finish(seq, func() {})
			return err
		}
		s.finish(seq, s.showDemo)
		return nil
	}

	value, err := s.fetcher(ctx)

	applied := s.finish(seq, func() {
		switch {
		case err == nil:
			s.state.Value = &value
		case s.session.IsGuest():
			s.showDemo()
		default:
			s.state.Value = nil
			s.state.Err = adapter.ErrorMessage(err, s.opts.FallbackError)
		}
	})
	if !applied {
		return nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "Single.Load").Msg("load failed")
		if s.session.IsGuest() {
			return nil
		}
	}
	return err
}

func (s *Single[T]) finish(seq uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	s.state.Loading = false
	apply()
	return true
}

func (s *Single[T]) showDemo() {
	var v T
	if s.opts.Demo != nil {
		v = s.opts.Demo()
	}
	s.state.Value = &v
	s.state.Err = ""
}
