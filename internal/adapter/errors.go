// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors an [*APIError] unwraps to, by HTTP status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrDecode is matched by every [*DecodeError].
	ErrDecode = errors.New("malformed backend response")

	// ErrInvalidAddress is returned by the constructor for an unusable base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// APIError is a non-2xx backend answer.
type APIError struct {
	StatusCode int
	// Message is the backend's "message" (or "error") field, empty when the
	// body carried neither.
	Message string
	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// Unwrap maps the status code to one of the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	if e.StatusCode >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return nil
}

// DecodeError is a 2xx answer whose body does not match the endpoint's
// result type.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// ErrorMessage turns err into the text shown to the user: the backend
// message when there is one, fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}

	return fallback
}
