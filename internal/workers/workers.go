// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
	logger  *logger.Logger

	mu      sync.Mutex
	running bool
}

// NewClientWorkers collects the background jobs of the client services.
func NewClientWorkers(services *service.ClientServices, log *logger.Logger) *Workers {
	var ws []Worker
	if services != nil && services.RefreshJob != nil {
		ws = append(ws, services.RefreshJob)
	}
	return New(log, ws...)
}

// New returns a Workers over ws. Nil entries are skipped.
func New(log *logger.Logger, ws ...Worker) *Workers {
	kept := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			kept = append(kept, w)
		}
	}
	return &Workers{workers: kept, logger: log.WithComponent("workers")}
}

// Start starts every worker in order. A second Start without Stop does
// nothing.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.running = true
	w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
}

// Stop stops the workers in reverse order and waits for each.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.running = false
	w.logger.Debug().Msg("workers stopped")
}
