// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session is the single authority for who is using the client and
// how: nobody, a guest browsing demo data, or an authenticated user.
//
// A [Manager] owns the in-memory session and is the only writer of the
// persisted session keys in local storage. Other components read it through
// [Manager.Snapshot] and the narrow accessor methods, observe it with
// [Manager.Subscribe], and change it only through its commands.
//
// State machine:
//
//	Initializing -> Anonymous | Guest | Authenticated   (Initialize, once)
//	Anonymous | Guest -> Authenticated                  (Login)
//	any -> Anonymous                                    (Logout)
//	Anonymous | Authenticated -> Guest                  (EnterGuestMode)
//
// Nothing leads back to Initializing.
package session
