// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.NoError(t, (&APIError{StatusCode: http.StatusTeapot}).Unwrap())
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 404: Not Found", (&APIError{StatusCode: 404}).Error())
	assert.Equal(t, "http 400: bad amount", (&APIError{StatusCode: 400, Message: "bad amount"}).Error())
}

func TestBackendMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"Invalid date"}`, want: "Invalid date"},
		{name: "error field", body: `{"error":"boom"}`, want: "boom"},
		{name: "message wins", body: `{"message":"m","error":"e"}`, want: "m"},
		{name: "plain text", body: "login already exists\n", want: "login already exists"},
		{name: "unknown json", body: `{"status":"fail"}`, want: ""},
		{name: "html page", body: "<html>bad gateway</html>", want: ""},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backendMessage([]byte(tt.body)))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(errors.New("dial tcp: refused"), "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(&APIError{StatusCode: 500, Message: "  "}, "fallback"))
	assert.Equal(t, "Nope", ErrorMessage(fmt.Errorf("op: %w", &APIError{StatusCode: 400, Message: "Nope"}), "fallback"))
}

func TestDecode(t *testing.T) {
	type plain struct {
		A int `json:"a"`
	}

	v, err := decode[plain]("plain", []byte(`{"a":1}`))
	assert.NoError(t, err)
	assert.Equal(t, 1, v.A)

	_, err = decode[plain]("plain", []byte("  "))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = decode[plain]("plain", []byte("{"))
	assert.ErrorIs(t, err, ErrDecode)
}
