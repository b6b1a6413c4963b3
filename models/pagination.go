// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar-date format the backend expects in list filters.
const DateLayout = "2006-01-02"

// DefaultPageLimit is used when FetchParams.Limit is not set.
const DefaultPageLimit = 10

// FetchParams describes a filtered, paginated list query. Zero values mean
// "not provided" and are omitted from the query string.
//
// FetchParams is a value type: collections replace it wholesale to trigger a
// new fetch and never mutate one that a request is using.
type FetchParams struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// DefaultFetchParams returns the first page of the month containing now.
func DefaultFetchParams(now time.Time, limit int) FetchParams {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	return FetchParams{
		StartDate: first.Format(DateLayout),
		EndDate:   last.Format(DateLayout),
		Page:      1,
		Limit:     limit,
	}
}

// WithPage returns a copy of p pointing at page.
func (p FetchParams) WithPage(page int) FetchParams {
	p.Page = page
	return p
}

// WithDateRange returns a copy of p with a new date range, reset to page 1.
func (p FetchParams) WithDateRange(start, end string) FetchParams {
	p.StartDate = start
	p.EndDate = end
	p.Page = 1
	return p
}

// SameDateRange reports whether p and other filter the same dates.
func (p FetchParams) SameDateRange(other FetchParams) bool {
	return p.StartDate == other.StartDate && p.EndDate == other.EndDate
}

// CurrentPage returns Page, treating an unset page as the first one.
func (p FetchParams) CurrentPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// Validate checks that provided dates are well-formed and ordered.
func (p FetchParams) Validate() error {
	var start, end time.Time
	var err error

	if p.StartDate != "" {
		if start, err = time.Parse(DateLayout, p.StartDate); err != nil {
			return fmt.Errorf("%w: start date %q", ErrInvalidDateRange, p.StartDate)
		}
	}
	if p.EndDate != "" {
		if end, err = time.Parse(DateLayout, p.EndDate); err != nil {
			return fmt.Errorf("%w: end date %q", ErrInvalidDateRange, p.EndDate)
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, p.StartDate, p.EndDate)
	}

	return nil
}

// QueryParams renders the non-zero fields as URL query parameters.
func (p FetchParams) QueryParams() map[string]string {
	q := make(map[string]string, 4)
	if p.StartDate != "" {
		q["startDate"] = p.StartDate
	}
	if p.EndDate != "" {
		q["endDate"] = p.EndDate
	}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// PaginationInfo is the paging metadata returned with every list page.
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	Limit       int `json:"limit"`
}

// HasPage reports whether page n exists according to the metadata.
func (p PaginationInfo) HasPage(n int) bool {
	return n >= 1 && n <= p.TotalPages
}

// Page is one page of a paginated list endpoint.
type Page[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// Validate rejects a page without pagination metadata.
func (p Page[T]) Validate() error {
	if p.Pagination == (PaginationInfo{}) {
		return fmt.Errorf("%w: pagination", ErrMissingField)
	}
	return nil
}

// SinglePage wraps items into a page that holds all of them.
func SinglePage[T any](items []T, limit int) Page[T] {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return Page[T]{
		Data: items,
		Pagination: PaginationInfo{
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  len(items),
			Limit:       limit,
		},
	}
}
