// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// AuthPresenter drives registration, login and logout for the UI. It holds
// only transient state (loading and the last error); the session is the
// source of truth for who is logged in.
//
// Callers must not start a second operation while one is running.
type AuthPresenter struct {
	api     adapter.AuthAPI
	session SessionController
	logger  *logger.Logger

	mu      sync.Mutex
	loading bool
	errMsg  string
}

// NewAuthPresenter wires the presenter to the backend and the session.
func NewAuthPresenter(api adapter.AuthAPI, session SessionController, log *logger.Logger) *AuthPresenter {
	return &AuthPresenter{api: api, session: session, logger: log.WithComponent("auth")}
}

// Register creates an account. It does not log in. On failure Error holds
// the message to show.
func (p *AuthPresenter) Register(ctx context.Context, req models.RegisterRequest) bool {
	p.begin()
	defer p.end()

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		p.setErr(app.MsgRequiredFields)
		return false
	}
	if len(req.Password) < app.MinPasswordLength {
		p.setErr(app.MsgPasswordTooShort)
		return false
	}

	if _, err := p.api.Register(ctx, req); err != nil {
		p.logger.Err(err).Str("func", "AuthPresenter.Register").Msg("registration failed")
		p.setErr(adapter.ErrorMessage(err, app.MsgRegistrationFailed))
		return false
	}

	p.logger.Info().Str("username", req.Username).Msg("registered")
	return true
}

// Login authenticates and hands tokens and user to the session. An answer
// without an access token or a user is a failure; the session is left as it
// was.
func (p *AuthPresenter) Login(ctx context.Context, identifier, password string) bool {
	p.begin()
	defer p.end()

	resp, err := p.api.Login(ctx, models.LoginRequest{
		Identifier: strings.TrimSpace(identifier),
		Password:   password,
	})
	if err != nil {
		p.logger.Err(err).Str("func", "AuthPresenter.Login").Msg("login failed")
		if errors.Is(err, models.ErrMissingField) {
			p.setErr(app.MsgLoginMissingData)
			return false
		}
		p.setErr(adapter.ErrorMessage(err, app.MsgLoginFailed))
		return false
	}
	if resp.User == nil {
		p.setErr(app.MsgLoginMissingData)
		return false
	}

	err = p.session.Login(ctx, resp.Tokens(), *resp.User)
	switch {
	case errors.Is(err, session.ErrInvalidSession):
		p.setErr(app.MsgLoginMissingData)
		return false
	case errors.Is(err, session.ErrNotPersisted):
		// logged in for this run; the next start asks again
		p.logger.Warn().Err(err).Msg("session will not survive a restart")
	case err != nil:
		p.setErr(app.MsgLoginFailed)
		return false
	}

	return true
}

// Logout revokes the refresh token on the backend when there is one and
// always ends the local session, whatever the backend answers.
func (p *AuthPresenter) Logout(ctx context.Context) {
	p.begin()
	defer p.end()

	defer func() {
		if err := p.session.Logout(context.WithoutCancel(ctx)); err != nil {
			p.logger.Err(err).Str("func", "AuthPresenter.Logout").Msg("local logout incomplete")
		}
	}()

	refresh := p.session.RefreshToken()
	if refresh == "" {
		return
	}
	if err := p.api.Logout(ctx, refresh); err != nil {
		p.logger.Warn().Err(err).Str("func", "AuthPresenter.Logout").Msg("backend logout failed")
	}
}

// ContinueAsGuest enters the read-only demo session.
func (p *AuthPresenter) ContinueAsGuest(ctx context.Context) bool {
	p.begin()
	defer p.end()

	if err := p.session.EnterGuestMode(ctx); err != nil && !errors.Is(err, session.ErrNotPersisted) {
		p.setErr(err.Error())
		return false
	}
	return true
}

// Loading reports whether an operation is running.
func (p *AuthPresenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Error returns the message of the last failure, empty after a success.
func (p *AuthPresenter) Error() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// ClearError forgets the last failure.
func (p *AuthPresenter) ClearError() {
	p.setErr("")
}

func (p *AuthPresenter) begin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = true
	p.errMsg = ""
}

func (p *AuthPresenter) end() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
}

func (p *AuthPresenter) setErr(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errMsg = msg
}
