// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-finance-tracker/internal/utils"
)

// beforeRequest waits for the rate limiter, then attaches the request ID and
// the bearer token the session holds at this very moment.
func (h *HTTPServerAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	ctx := r.Context()

	if err := h.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	r.SetHeader(requestIDHeader, requestID)

	if h.session != nil {
		if token := h.session.AccessToken(); token != "" {
			r.SetAuthToken(token)
		}
	}

	return nil
}

// afterResponse handles an expired session globally. A guest session keeps
// its state: guest requests to protected endpoints are expected to fail.
func (h *HTTPServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized || h.session == nil {
		return nil
	}

	ctx := resp.Request.Context()
	if utils.IsCredentialsCheck(ctx) {
		return nil
	}

	log := h.logger.With().
		Str("func", "HTTPServerAdapter.afterResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Logger()

	if h.session.IsGuest() {
		log.Warn().Msg("unauthorized response in guest mode ignored")
		return nil
	}

	log.Warn().Msg("session expired, forcing logout")
	// the request context may already be done; the logout must still run
	if err := h.session.Logout(context.WithoutCancel(ctx)); err != nil {
		log.Err(err).Msg("forced logout did not clear persisted session")
	}

	h.mu.RLock()
	onForcedLogout := h.onForcedLogout
	h.mu.RUnlock()
	if onForcedLogout != nil {
		onForcedLogout()
	}

	return nil
}

func (h *HTTPServerAdapter) logTransportError(r *resty.Request, err error) {
	if _, ok := err.(*resty.ResponseError); ok {
		return
	}
	h.logger.Err(err).
		Str("func", "HTTPServerAdapter.logTransportError").
		Str("method", r.Method).
		Str("url", r.URL).
		Msg("request failed")
}
