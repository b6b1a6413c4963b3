// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
)

type validator interface {
	Validate() error
}

// decode unmarshals a 2xx body into T and runs T's Validate when it has one.
func decode[T any](op string, body []byte) (T, error) {
	var v T

	if len(bytes.TrimSpace(body)) == 0 {
		return v, &DecodeError{Op: op, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &DecodeError{Op: op, Err: err}
	}
	if val, ok := any(v).(validator); ok {
		if err := val.Validate(); err != nil {
			return v, &DecodeError{Op: op, Err: err}
		}
	}

	return v, nil
}
