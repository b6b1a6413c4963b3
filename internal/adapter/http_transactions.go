// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-finance-tracker/models"
)

const (
	incomePath           = "/income"
	outcomePath          = "/outcome"
	incomeCategoriesPath = "/income/categories"
	outcomeCategories    = "/categories"
)

func (h *HTTPServerAdapter) ListIncome(ctx context.Context, params models.FetchParams) (models.Page[models.Income], error) {
	return listRecords[models.Income](ctx, h, "list income", incomePath, params)
}

func (h *HTTPServerAdapter) CreateIncome(ctx context.Context, payload models.TransactionPayload) (models.Income, error) {
	return createRecord[models.Income](ctx, h, "create income", incomePath, payload)
}

func (h *HTTPServerAdapter) UpdateIncome(ctx context.Context, id int64, payload models.TransactionPayload) (models.Income, error) {
	return updateRecord[models.Income](ctx, h, "update income", incomePath, id, payload)
}

func (h *HTTPServerAdapter) DeleteIncome(ctx context.Context, id int64) error {
	return h.deleteRecord(ctx, "delete income", incomePath, id)
}

// IncomeCategories implements [IncomeAPI]. GET /income/categories.
func (h *HTTPServerAdapter) IncomeCategories(ctx context.Context) ([]models.Category, error) {
	return h.categories(ctx, "income categories", incomeCategoriesPath)
}

func (h *HTTPServerAdapter) ListOutcome(ctx context.Context, params models.FetchParams) (models.Page[models.Outcome], error) {
	return listRecords[models.Outcome](ctx, h, "list outcome", outcomePath, params)
}

func (h *HTTPServerAdapter) CreateOutcome(ctx context.Context, payload models.TransactionPayload) (models.Outcome, error) {
	return createRecord[models.Outcome](ctx, h, "create outcome", outcomePath, payload)
}

func (h *HTTPServerAdapter) UpdateOutcome(ctx context.Context, id int64, payload models.TransactionPayload) (models.Outcome, error) {
	return updateRecord[models.Outcome](ctx, h, "update outcome", outcomePath, id, payload)
}

func (h *HTTPServerAdapter) DeleteOutcome(ctx context.Context, id int64) error {
	return h.deleteRecord(ctx, "delete outcome", outcomePath, id)
}

// OutcomeCategories implements [OutcomeAPI]. GET /categories.
func (h *HTTPServerAdapter) OutcomeCategories(ctx context.Context) ([]models.Category, error) {
	return h.categories(ctx, "outcome categories", outcomeCategories)
}

func listRecords[T any](ctx context.Context, h *HTTPServerAdapter, op, path string, params models.FetchParams) (models.Page[T], error) {
	if err := params.Validate(); err != nil {
		return models.Page[T]{}, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := h.request(ctx).
		SetQueryParams(params.QueryParams()).
		Get(path)
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[T]{}, err
	}

	return decode[models.Page[T]](op, resp.Body())
}

func createRecord[T any](ctx context.Context, h *HTTPServerAdapter, op, path string, payload models.TransactionPayload) (T, error) {
	var zero T

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return zero, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return decode[T](op, resp.Body())
}

func updateRecord[T any](ctx context.Context, h *HTTPServerAdapter, op, path string, id int64, payload models.TransactionPayload) (T, error) {
	var zero T

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(payload).
		Put(path + "/{id}")
	if err != nil {
		return zero, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return decode[T](op, resp.Body())
}

func (h *HTTPServerAdapter) deleteRecord(ctx context.Context, op, path string, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(path + "/{id}")
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func (h *HTTPServerAdapter) categories(ctx context.Context, op, path string) ([]models.Category, error) {
	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decode[[]models.Category](op, resp.Body())
}
