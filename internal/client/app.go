// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/tui"
	"github.com/MKhiriev/go-finance-tracker/internal/workers"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Initializer restores the session before the UI starts.
type Initializer interface {
	Initialize(ctx context.Context, signals session.InitSignals) session.Snapshot
}

// App runs one client process.
type App struct {
	session Initializer
	signals session.InitSignals
	workers Worker
	ui      UI
	closer  io.Closer
	logger  *logger.Logger
}

// NewApp assembles an App from already built parts. closer may be nil.
func NewApp(sess Initializer, signals session.InitSignals, w Worker, ui UI, closer io.Closer, log *logger.Logger) *App {
	return &App{
		session: sess,
		signals: signals,
		workers: w,
		ui:      ui,
		closer:  closer,
		logger:  log.WithComponent("app"),
	}
}

// NewClientApp wires the whole client from cfg: local storage, session,
// REST adapter, services, workers and the terminal UI.
func NewClientApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	manager := session.NewManager(storages.LocalStorage, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, manager, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	serverAdapter.SetForcedLogoutHandler(func() {
		log.Warn().Msg("session expired, logged out")
	})

	services := service.NewClientServices(serverAdapter, manager, cfg, log)
	ui := tui.New(services, manager, buildInfo, log)

	signals := session.InitSignals{
		GuestRequested: cfg.App.Guest || session.GuestRequestedFromURL(cfg.App.EntryURL),
	}

	return NewApp(manager, signals, workers.NewClientWorkers(services, log), ui, storages, log), nil
}

// Run restores the session, starts the workers and blocks in the UI. A
// user quitting the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	snap := a.session.Initialize(ctx, a.signals)
	a.logger.Info().Str("state", snap.State.String()).Msg("session initialized")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close local storage")
	}
}
