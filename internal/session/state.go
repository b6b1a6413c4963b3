// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Keys of the persisted session in local storage.
const (
	KeyAuthToken    = "authToken"
	KeyRefreshToken = "refreshToken"
	KeyAuthUser     = "authUser"
	KeyGuestMode    = "isGuestMode"
)

var allKeys = []string{KeyAuthToken, KeyRefreshToken, KeyAuthUser, KeyGuestMode}

// State is the coarse session state.
type State int

const (
	Initializing State = iota
	Anonymous
	Guest
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Guest:
		return "guest"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the session at one point in time.
type Snapshot struct {
	State  State
	Tokens models.Tokens
	// User is nil unless a user is logged in. It is a copy; mutating it
	// does not affect the session.
	User      *models.User
	IsGuest   bool
	IsLoading bool
	// Version grows with every change, so subscribers can drop snapshots
	// that arrive out of order.
	Version uint64
}

// IsAuthenticated holds when an access token and a user are present and the
// session is not a guest session.
func (s Snapshot) IsAuthenticated() bool {
	return s.Tokens.AccessToken != "" && s.User != nil && !s.IsGuest
}

// InitSignals are the startup inputs other than persisted state.
type InitSignals struct {
	// GuestRequested forces guest mode, overriding any persisted session.
	GuestRequested bool
}

// GuestRequestedFromURL reports whether rawURL carries guest=true in its
// query. Unparseable URLs request nothing.
func GuestRequestedFromURL(rawURL string) bool {
	if strings.TrimSpace(rawURL) == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Query().Get("guest"), "true")
}
