// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Manager owns the session. It is safe for concurrent use.
//
// Commands persist first and then update memory while holding the write
// lock, so the persisted keys always follow the order of in-memory changes.
// Subscribers run after the lock is released, in registration order.
type Manager struct {
	storage store.LocalStorage
	logger  *logger.Logger

	mu          sync.RWMutex
	initialized bool
	tokens      models.Tokens
	user        *models.User
	guest       bool
	version     uint64

	subMu     sync.Mutex
	subs      []subscriber
	nextSubID int
}

// NewManager returns a Manager in the Initializing state. Call Initialize
// once before routing any user action.
func NewManager(storage store.LocalStorage, log *logger.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  log.WithComponent("session"),
	}
}

// Initialize resolves the startup session from signals and one read of the
// persisted keys. Precedence: explicit guest request, then a persisted
// authenticated session, then the persisted guest flag, then anonymous.
//
// It runs once; later calls return the current snapshot. It never fails:
// unreadable or corrupt persisted state counts as no session.
func (m *Manager) Initialize(ctx context.Context, signals InitSignals) Snapshot {
	m.mu.Lock()
	if m.initialized {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap
	}

	if signals.GuestRequested {
		if err := m.storage.Apply(ctx, guestMutation()); err != nil {
			m.logger.Err(err).Str("func", "Manager.Initialize").Msg("failed to persist requested guest mode")
		}
		m.setGuestLocked()
	} else {
		m.restoreLocked(ctx)
	}
	m.initialized = true

	snap := m.commitLocked()
	m.mu.Unlock()

	m.logger.Info().Str("state", snap.State.String()).Msg("session initialized")
	m.notify(snap)
	return snap
}

// restoreLocked loads the persisted session into memory.
func (m *Manager) restoreLocked(ctx context.Context) {
	token := m.read(ctx, KeyAuthToken)
	refresh := m.read(ctx, KeyRefreshToken)
	rawUser := m.read(ctx, KeyAuthUser)
	guestFlag := m.read(ctx, KeyGuestMode) == "true"

	if user, ok := m.decodeUser(rawUser); ok && token != "" {
		m.tokens = models.Tokens{AccessToken: token, RefreshToken: refresh}.Normalize()
		m.user = &user
		m.guest = false
		if guestFlag {
			m.remove(ctx, "Manager.Initialize", KeyGuestMode)
		}
		return
	}

	// a partial or corrupt pair is no session
	if token != "" || refresh != "" || rawUser != "" {
		m.remove(ctx, "Manager.Initialize", KeyAuthToken, KeyRefreshToken, KeyAuthUser)
	}

	if guestFlag {
		m.setGuestLocked()
	}
}

func (m *Manager) read(ctx context.Context, key string) string {
	v, err := m.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrItemNotFound) {
			m.logger.Err(err).Str("func", "Manager.read").Str("key", key).Msg("failed to read persisted session")
		}
		return ""
	}
	return v
}

func (m *Manager) decodeUser(raw string) (models.User, bool) {
	if raw == "" {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Warn().Err(err).Str("func", "Manager.decodeUser").Msg("discarding corrupt persisted user")
		return models.User{}, false
	}
	if user.IsZero() {
		m.logger.Warn().Str("func", "Manager.decodeUser").Msg("discarding empty persisted user")
		return models.User{}, false
	}
	return user, true
}

func (m *Manager) remove(ctx context.Context, op string, keys ...string) {
	if err := m.storage.Remove(ctx, keys...); err != nil {
		m.logger.Err(err).Str("func", op).Strs("keys", keys).Msg("failed to remove persisted session keys")
	}
}

// Login starts an authenticated session, replacing a guest session if any.
// It persists tokens and user and clears the guest flag in one storage
// transaction.
//
// An empty access token or a zero user returns [ErrInvalidSession] and changes
// nothing. A storage failure returns an error wrapping [ErrNotPersisted]; the
// in-memory session is authenticated regardless.
func (m *Manager) Login(ctx context.Context, tokens models.Tokens, user models.User) error {
	tokens = tokens.Normalize()
	if tokens.AccessToken == "" || user.IsZero() {
		return ErrInvalidSession
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	mutation := store.Mutation{
		Set: map[string]string{
			KeyAuthToken: tokens.AccessToken,
			KeyAuthUser:  string(rawUser),
		},
		Remove: []string{KeyGuestMode},
	}
	if tokens.RefreshToken != "" {
		mutation.Set[KeyRefreshToken] = tokens.RefreshToken
	} else {
		mutation.Remove = append(mutation.Remove, KeyRefreshToken)
	}

	m.mu.Lock()
	persistErr := m.storage.Apply(ctx, mutation)
	m.tokens = tokens
	m.user = &user
	m.guest = false
	m.initialized = true
	snap := m.commitLocked()
	m.mu.Unlock()

	m.logger.Info().Int64("user_id", user.ID).Msg("logged in")
	m.notify(snap)

	return m.persistError("login", persistErr)
}

// Logout ends any session and clears every persisted key. It is idempotent.
// The in-memory session is always anonymous afterwards; a storage failure
// is reported as an error wrapping [ErrNotPersisted].
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	persistErr := m.storage.Remove(ctx, allKeys...)
	changed := m.tokens != (models.Tokens{}) || m.user != nil || m.guest || !m.initialized
	m.tokens = models.Tokens{}
	m.user = nil
	m.guest = false
	m.initialized = true
	var snap Snapshot
	if changed {
		snap = m.commitLocked()
	}
	m.mu.Unlock()

	if changed {
		m.logger.Info().Msg("logged out")
		m.notify(snap)
	}

	return m.persistError("logout", persistErr)
}

// EnterGuestMode switches to the read-only demo session, discarding tokens
// and user. Calling it in guest mode is not an error.
func (m *Manager) EnterGuestMode(ctx context.Context) error {
	m.mu.Lock()
	persistErr := m.storage.Apply(ctx, guestMutation())
	changed := !m.guest || !m.initialized
	m.setGuestLocked()
	m.initialized = true
	var snap Snapshot
	if changed {
		snap = m.commitLocked()
	}
	m.mu.Unlock()

	if changed {
		m.logger.Info().Msg("entered guest mode")
		m.notify(snap)
	}

	return m.persistError("enter guest mode", persistErr)
}

// UpdateUserContext merges patch into the current user and persists the
// result. Fields absent from patch are kept. Without a user it does nothing.
func (m *Manager) UpdateUserContext(ctx context.Context, patch models.UserPatch) error {
	m.mu.Lock()
	if m.user == nil || patch.IsEmpty() {
		m.mu.Unlock()
		return nil
	}

	merged := m.user.Merge(patch)
	rawUser, err := json.Marshal(merged)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("encode user: %w", err)
	}

	persistErr := m.storage.Set(ctx, KeyAuthUser, string(rawUser))
	m.user = &merged
	snap := m.commitLocked()
	m.mu.Unlock()

	m.notify(snap)
	return m.persistError("update user", persistErr)
}

// SetTokens replaces the tokens of an authenticated session after a refresh.
// An empty refresh token keeps the current one.
func (m *Manager) SetTokens(ctx context.Context, tokens models.Tokens) error {
	tokens = tokens.Normalize()
	if tokens.AccessToken == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	if !m.snapshotLocked().IsAuthenticated() {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = m.tokens.RefreshToken
	}

	mutation := store.Mutation{Set: map[string]string{KeyAuthToken: tokens.AccessToken}}
	if tokens.RefreshToken != "" {
		mutation.Set[KeyRefreshToken] = tokens.RefreshToken
	}

	persistErr := m.storage.Apply(ctx, mutation)
	m.tokens = tokens
	snap := m.commitLocked()
	m.mu.Unlock()

	m.notify(snap)
	return m.persistError("set tokens", persistErr)
}

// Snapshot returns a copy of the current session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshotLocked()
}

// State returns the current coarse state.
func (m *Manager) State() State {
	return m.Snapshot().State
}

// AccessToken returns the bearer token, empty outside an authenticated
// session.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.guest {
		return ""
	}
	return m.tokens.AccessToken
}

// RefreshToken returns the refresh token, if any.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tokens.RefreshToken
}

// IsGuest reports whether the session is a guest session.
func (m *Manager) IsGuest() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.guest
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.Snapshot().IsAuthenticated()
}

// Subscribe registers fn to receive every new snapshot. fn runs on the
// goroutine that changed the session and must not block. The returned
// function removes the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) (cancel func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.nextSubID++
	id := m.nextSubID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			defer m.subMu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *Manager) notify(snap Snapshot) {
	m.subMu.Lock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, s := range subs {
		s.fn(snap)
	}
}

func (m *Manager) setGuestLocked() {
	m.tokens = models.Tokens{}
	m.user = nil
	m.guest = true
}

// commitLocked bumps the version and returns the new snapshot.
func (m *Manager) commitLocked() Snapshot {
	m.version++
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		Tokens:    m.tokens,
		IsGuest:   m.guest,
		IsLoading: !m.initialized,
		Version:   m.version,
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}

	switch {
	case !m.initialized:
		snap.State = Initializing
	case m.guest:
		snap.State = Guest
	case snap.IsAuthenticated():
		snap.State = Authenticated
	default:
		snap.State = Anonymous
	}
	return snap
}

func (m *Manager) persistError(op string, err error) error {
	if err == nil {
		return nil
	}
	m.logger.Err(err).Str("func", "Manager.persistError").Str("op", op).Msg("session change kept in memory only")
	return fmt.Errorf("%s: %w: %w", op, ErrNotPersisted, err)
}

func guestMutation() store.Mutation {
	return store.Mutation{
		Set:    map[string]string{KeyGuestMode: "true"},
		Remove: []string{KeyAuthToken, KeyRefreshToken, KeyAuthUser},
	}
}
