// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Uncategorized is displayed for records without a category.
const Uncategorized = "Uncategorized"

// Category is an income or expense category defined by the backend.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"nama"`
}

// Income is a single income record. JSON keys follow the backend contract.
type Income struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"jumlah"`
	CategoryID  *int64    `json:"kategori_id,omitempty"`
	Description string    `json:"keterangan,omitempty"`
	Date        string    `json:"tanggal"`
	Category    *Category `json:"kategori_pemasukan,omitempty"`
}

// RecordID returns the backend identifier of the record.
func (i Income) RecordID() int64 { return i.ID }

// CategoryName returns the denormalized category name for display.
func (i Income) CategoryName() string {
	return categoryName(i.Category)
}

// Outcome is a single expense record.
type Outcome struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"jumlah"`
	CategoryID  *int64    `json:"kategori_id,omitempty"`
	Description string    `json:"keterangan,omitempty"`
	Date        string    `json:"tanggal"`
	Category    *Category `json:"kategori_pengeluaran,omitempty"`
}

// RecordID returns the backend identifier of the record.
func (o Outcome) RecordID() int64 { return o.ID }

// CategoryName returns the denormalized category name for display.
func (o Outcome) CategoryName() string {
	return categoryName(o.Category)
}

func categoryName(c *Category) string {
	if c == nil || c.Name == "" {
		return Uncategorized
	}
	return c.Name
}

// TransactionPayload is the body of create and update requests for both
// income and outcome records.
type TransactionPayload struct {
	Amount      float64 `json:"jumlah"`
	CategoryID  *int64  `json:"kategori_id,omitempty"`
	Description string  `json:"keterangan,omitempty"`
	Date        string  `json:"tanggal,omitempty"`
}

// Validate applies the form rules: positive amount and a parseable date.
func (p TransactionPayload) Validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	if p.Date == "" {
		return ErrMissingDate
	}
	if _, err := ParseRecordDate(p.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingDate, err)
	}
	return nil
}

// ValidateWithCategory is [TransactionPayload.Validate] plus a required
// category, as expense records must be categorized.
func (p TransactionPayload) ValidateWithCategory() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CategoryID == nil || *p.CategoryID <= 0 {
		return ErrMissingCategory
	}
	return nil
}

// ParseRecordDate accepts either an RFC 3339 timestamp or a plain
// YYYY-MM-DD date, the two forms the backend emits.
func ParseRecordDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(DateLayout, s)
}

// ShortDate renders a record date as YYYY-MM-DD, falling back to the raw
// value when it cannot be parsed.
func ShortDate(s string) string {
	t, err := ParseRecordDate(s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}
