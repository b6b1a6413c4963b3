// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

type spyRefresher struct {
	calls     atomic.Int32
	threshold atomic.Int64
	err       error
}

func (s *spyRefresher) RefreshIfExpiring(_ context.Context, threshold time.Duration) (bool, error) {
	s.calls.Add(1)
	s.threshold.Store(int64(threshold))
	return s.err == nil, s.err
}

func TestRefreshJob_ChecksImmediatelyAndOnTick(t *testing.T) {
	spy := &spyRefresher{}
	job := newRefreshJob(spy, 10*time.Millisecond, time.Minute, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Minute), spy.threshold.Load())
}

func TestRefreshJob_StopHaltsChecks(t *testing.T) {
	spy := &spyRefresher{}
	job := newRefreshJob(spy, 10*time.Millisecond, time.Minute, logger.Nop())

	job.Start(context.Background())
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())

	// second Stop is a no-op
	job.Stop()
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	spy := &spyRefresher{err: errors.New("offline")}
	job := newRefreshJob(spy, 10*time.Millisecond, time.Minute, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancel")
	}
}

func TestRefreshJob_RestartReplacesLoop(t *testing.T) {
	spy := &spyRefresher{}
	job := newRefreshJob(spy, time.Hour, time.Minute, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestNewRefreshJob_Defaults(t *testing.T) {
	job := newRefreshJob(&spyRefresher{}, 0, -1, logger.Nop())

	assert.Equal(t, defaultRefreshInterval, job.interval)
	assert.Equal(t, defaultRefreshThreshold, job.threshold)
}
