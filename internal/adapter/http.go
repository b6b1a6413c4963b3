// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// HTTPServerAdapter is the resty implementation of [ServerAdapter].
type HTTPServerAdapter struct {
	client  *utils.HTTPClient
	session SessionGuard
	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	mu             sync.RWMutex
	onForcedLogout func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress, applies the request
// timeout and the outbound rate limit, and installs the request hooks bound to
// session.
//
// Returns a wrapped [ErrInvalidAddress] if the address is empty or cannot be
// parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, session SessionGuard, logger *logger.Logger) (*HTTPServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	h := &HTTPServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		session: session,
		limiter: newLimiter(adapterCfg.RateLimit, adapterCfg.RateBurst),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}

	h.client.
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse).
		OnError(h.logTransportError)

	return h, nil
}

// newLimiter returns an unlimited limiter when rps is not positive.
func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = int(math.Max(1, math.Ceil(rps)))
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// SetForcedLogoutHandler registers fn to run after a 401 forced a logout.
func (h *HTTPServerAdapter) SetForcedLogoutHandler(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.onForcedLogout = fn
}

func (h *HTTPServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// credentialsRequest is a request whose 401 is a wrong-credentials answer.
func (h *HTTPServerAdapter) credentialsRequest(ctx context.Context) *resty.Request {
	return h.request(utils.WithCredentialsCheck(ctx))
}
