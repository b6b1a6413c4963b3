// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransactionType tells income and outcome entries apart in mixed lists.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionOutcome TransactionType = "outcome"
)

// DashboardTransaction is an entry of the dashboard "recent" list.
type DashboardTransaction struct {
	ID              int64           `json:"id"`
	Amount          float64         `json:"jumlah"`
	Description     string          `json:"keterangan,omitempty"`
	Date            string          `json:"tanggal"`
	Type            TransactionType `json:"type"`
	CategoryID      *int64          `json:"kategori_id,omitempty"`
	IncomeCategory  *Category       `json:"kategori_pemasukan,omitempty"`
	OutcomeCategory *Category       `json:"kategori_pengeluaran,omitempty"`
}

// CategoryName returns whichever category matches the entry type.
func (t DashboardTransaction) CategoryName() string {
	if t.Type == TransactionIncome {
		return categoryName(t.IncomeCategory)
	}
	return categoryName(t.OutcomeCategory)
}

// DashboardSummary is the body returned by GET /dashboard/summary.
type DashboardSummary struct {
	TotalIncome        float64                `json:"totalIncome"`
	TotalOutcome       float64                `json:"totalOutcome"`
	Balance            float64                `json:"balance"`
	Month              string                 `json:"month"`
	RecentTransactions []DashboardTransaction `json:"recentTransactions"`
}

// Validate implements the boundary check; every field has a usable zero
// value, so the summary is always accepted once it decodes.
func (s DashboardSummary) Validate() error {
	return nil
}
