// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Guest-mode datasets. They never change, so every guest sees the same
// numbers.

var demoIncomeCategories = []models.Category{
	{ID: 701, Name: "Salary (Demo)"},
	{ID: 702, Name: "Freelance (Demo)"},
	{ID: 703, Name: "Investments (Demo)"},
	{ID: 704, Name: "Bonus (Demo)"},
}

var demoOutcomeCategories = []models.Category{
	{ID: 801, Name: "Food & Dining (Demo)"},
	{ID: 802, Name: "Housing (Demo)"},
	{ID: 803, Name: "Transportation (Demo)"},
	{ID: 804, Name: "Utilities (Demo)"},
	{ID: 805, Name: "Entertainment (Demo)"},
}

var demoRecommendation = models.Recommendation{
	Message: "Selamat datang, Tamu! Berikut beberapa tips keuangan umum sebagai demonstrasi:",
	Tips: []string{
		"Buat anggaran bulanan untuk memahami kebiasaan pengeluaran Anda.",
		"Usahakan menabung setidaknya 10–20% dari penghasilan setiap bulan.",
		"Tinjau kembali tujuan keuangan Anda setiap kuartal dan sesuaikan jika diperlukan.",
		"Pertimbangkan untuk mengotomatiskan tabungan dan investasi Anda.",
		"Pelajari berbagai opsi investasi untuk menumbuhkan kekayaan Anda.",
	},
}

func demoIncome(id, categoryID int64, amount float64, description, date string) models.Income {
	cat := demoCategory(demoIncomeCategories, categoryID)
	return models.Income{ID: id, Amount: amount, CategoryID: &categoryID, Description: description, Date: date, Category: &cat}
}

func demoOutcome(id, categoryID int64, amount float64, description, date string) models.Outcome {
	cat := demoCategory(demoOutcomeCategories, categoryID)
	return models.Outcome{ID: id, Amount: amount, CategoryID: &categoryID, Description: description, Date: date, Category: &cat}
}

func demoCategory(categories []models.Category, id int64) models.Category {
	i := slices.IndexFunc(categories, func(c models.Category) bool { return c.ID == id })
	return categories[i]
}

// DemoIncomes returns the guest income dataset.
func DemoIncomes() []models.Income {
	return []models.Income{
		demoIncome(201, 701, 9000000, "Monthly Salary (June Demo)", "2023-06-01"),
		demoIncome(202, 702, 2500000, "Web Design Project (Demo)", "2023-06-10"),
		demoIncome(203, 703, 350000, "Stock Dividends (Demo)", "2023-06-15"),
		demoIncome(204, 701, 1200000, "Performance Bonus (Demo)", "2023-06-20"),
	}
}

// DemoOutcomes returns the guest expense dataset.
func DemoOutcomes() []models.Outcome {
	return []models.Outcome{
		demoOutcome(301, 801, 850000, "Weekly Groceries (Demo)", "2023-06-03"),
		demoOutcome(302, 802, 3500000, "Monthly Rent (Demo)", "2023-06-05"),
		demoOutcome(303, 803, 450000, "Gasoline Fill-up (Demo)", "2023-06-08"),
		demoOutcome(304, 804, 600000, "Electricity & Internet Bill (Demo)", "2023-06-12"),
		demoOutcome(305, 805, 250000, "Cinema Tickets (Demo)", "2023-06-18"),
	}
}

// DemoRecommendation returns the guest AI tips.
func DemoRecommendation() models.Recommendation {
	r := demoRecommendation
	r.Tips = slices.Clone(demoRecommendation.Tips)
	return r
}

// demoRecentCount is the length of the dashboard's recent list.
const demoRecentCount = 5

// DemoDashboard computes the guest dashboard from the demo datasets: totals,
// balance and the five most recent entries, newest first.
func DemoDashboard() models.DashboardSummary {
	var summary models.DashboardSummary
	recent := make([]models.DashboardTransaction, 0, 9)

	for _, in := range DemoIncomes() {
		summary.TotalIncome += in.Amount
		recent = append(recent, models.DashboardTransaction{
			ID:             in.ID,
			Amount:         in.Amount,
			Description:    in.Description,
			Date:           in.Date,
			Type:           models.TransactionIncome,
			CategoryID:     in.CategoryID,
			IncomeCategory: in.Category,
		})
	}
	for _, out := range DemoOutcomes() {
		summary.TotalOutcome += out.Amount
		recent = append(recent, models.DashboardTransaction{
			ID:              out.ID,
			Amount:          out.Amount,
			Description:     out.Description,
			Date:            out.Date,
			Type:            models.TransactionOutcome,
			CategoryID:      out.CategoryID,
			OutcomeCategory: out.Category,
		})
	}

	slices.SortStableFunc(recent, func(a, b models.DashboardTransaction) int {
		return strings.Compare(b.Date, a.Date)
	})

	summary.Balance = summary.TotalIncome - summary.TotalOutcome
	summary.Month = "2023-06"
	summary.RecentTransactions = recent[:demoRecentCount]
	return summary
}
