// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

const (
	defaultRefreshInterval  = time.Minute
	defaultRefreshThreshold = 2 * time.Minute
)

// tokenRefresher is the part of [TokenRefresher] the job calls.
type tokenRefresher interface {
	RefreshIfExpiring(ctx context.Context, threshold time.Duration) (bool, error)
}

type refreshJob struct {
	refresher tokenRefresher
	interval  time.Duration
	threshold time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that checks the access token every interval
// and refreshes it when it expires within threshold. A non-positive interval
// defaults to one minute, a negative threshold to two minutes. The job is
// idle until Start is called.
func NewRefreshJob(refresher *TokenRefresher, interval, threshold time.Duration, log *logger.Logger) Job {
	return newRefreshJob(refresher, interval, threshold, log)
}

func newRefreshJob(refresher tokenRefresher, interval, threshold time.Duration, log *logger.Logger) *refreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if threshold < 0 {
		threshold = defaultRefreshThreshold
	}
	return &refreshJob{
		refresher: refresher,
		interval:  interval,
		threshold: threshold,
		logger:    log.WithComponent("refresh-job"),
	}
}

// Start implements Job. The first check runs right away, then on every tick,
// until ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop implements Job.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *refreshJob) check(ctx context.Context) {
	refreshed, err := j.refresher.RefreshIfExpiring(ctx, j.threshold)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Warn().Err(err).Msg("token refresh failed")
		}
		return
	}
	if refreshed {
		j.logger.Debug().Msg("token refreshed by job")
	}
}
