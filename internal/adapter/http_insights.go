// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// DashboardSummary implements [InsightsAPI]. GET /dashboard/summary.
func (h *HTTPServerAdapter) DashboardSummary(ctx context.Context, params models.FetchParams) (models.DashboardSummary, error) {
	resp, err := h.request(ctx).
		SetQueryParams(params.QueryParams()).
		Get("/dashboard/summary")
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("dashboard summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardSummary{}, err
	}

	return decode[models.DashboardSummary]("dashboard summary", resp.Body())
}

// Recommendations implements [InsightsAPI]. GET /ai/recommendations.
func (h *HTTPServerAdapter) Recommendations(ctx context.Context) (models.Recommendation, error) {
	resp, err := h.request(ctx).Get("/ai/recommendations")
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("recommendations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recommendation{}, err
	}

	return decode[models.Recommendation]("recommendations", resp.Body())
}

// Chat implements [InsightsAPI]. POST /ai/chat.
func (h *HTTPServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error) {
	if req.History == nil {
		req.History = []models.ChatHistoryEntry{}
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/ai/chat")
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatMessage{}, err
	}

	return decode[models.ChatMessage]("chat", resp.Body())
}

// UploadAvatar implements [ProfileAPI]. POST /users/profile-picture as
// multipart/form-data.
func (h *HTTPServerAdapter) UploadAvatar(ctx context.Context, filename string, picture io.Reader) (models.AvatarResponse, error) {
	resp, err := h.request(ctx).
		SetFileReader("profilePicture", filename, picture).
		Post("/users/profile-picture")
	if err != nil {
		return models.AvatarResponse{}, fmt.Errorf("upload avatar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AvatarResponse{}, err
	}

	return decode[models.AvatarResponse]("upload avatar", resp.Body())
}
