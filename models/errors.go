// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Validation errors returned by the Validate methods of request and response
// types. Callers match them with [errors.Is].
var (
	// ErrMissingField is returned when a required field of a backend response
	// is absent or empty.
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrMissingDate is returned when a transaction payload has no date.
	ErrMissingDate = errors.New("date is required")

	// ErrMissingCategory is returned when an outcome payload has no category.
	ErrMissingCategory = errors.New("category is required")

	// ErrInvalidDateRange is returned when FetchParams carry a start date
	// after the end date or a date that is not in YYYY-MM-DD form.
	ErrInvalidDateRange = errors.New("invalid date range")
)
