// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    backendMessage(body),
		Body:       body,
	}
}

// backendMessage extracts "message" or "error" from a JSON body. Plain-text
// bodies are used as they are.
func backendMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "<") {
			return ""
		}
		return trimmed
	}

	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
