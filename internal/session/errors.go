// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrInvalidSession is returned by Login and SetTokens when the access
	// token or the user is missing. The session is left unchanged.
	ErrInvalidSession = errors.New("session requires an access token and a user")

	// ErrNotAuthenticated is returned by SetTokens outside an authenticated
	// session.
	ErrNotAuthenticated = errors.New("session is not authenticated")

	// ErrNotPersisted wraps local storage failures. The in-memory session has
	// been changed anyway and stays valid until the process exits.
	ErrNotPersisted = errors.New("session change was not persisted")
)
