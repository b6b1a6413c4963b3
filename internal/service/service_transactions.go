// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/resource"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type (
	// IncomeCollection is the paginated income list.
	IncomeCollection = resource.Collection[models.Income, models.TransactionPayload]
	// OutcomeCollection is the paginated expense list.
	OutcomeCollection = resource.Collection[models.Outcome, models.TransactionPayload]
)

// NewIncomeCollection returns the income list for the current month.
func NewIncomeCollection(api adapter.IncomeAPI, guest resource.GuestChecker, cfg config.ClientApp, log *logger.Logger) *IncomeCollection {
	backend := resource.BackendFuncs[models.Income, models.TransactionPayload]{
		ListFunc:   api.ListIncome,
		CreateFunc: api.CreateIncome,
		UpdateFunc: api.UpdateIncome,
		DeleteFunc: api.DeleteIncome,
	}

	return resource.NewCollection(backend, guest, resource.Options[models.Income, models.TransactionPayload]{
		Name:    "income",
		Filters: models.DefaultFetchParams(time.Now(), cfg.PageLimit),
		Messages: resource.Messages{
			Load:   app.MsgFetchIncomes,
			Add:    app.MsgAddIncome,
			Update: app.MsgUpdateIncome,
			Delete: app.MsgDeleteIncome,
		},
		Demo:      func(models.FetchParams) []models.Income { return DemoIncomes() },
		DemoDelay: cfg.DemoDelay,
		Validate:  models.TransactionPayload.Validate,
	}, log)
}

// NewOutcomeCollection returns the expense list for the current month.
// Expenses must carry a category.
func NewOutcomeCollection(api adapter.OutcomeAPI, guest resource.GuestChecker, cfg config.ClientApp, log *logger.Logger) *OutcomeCollection {
	backend := resource.BackendFuncs[models.Outcome, models.TransactionPayload]{
		ListFunc:   api.ListOutcome,
		CreateFunc: api.CreateOutcome,
		UpdateFunc: api.UpdateOutcome,
		DeleteFunc: api.DeleteOutcome,
	}

	return resource.NewCollection(backend, guest, resource.Options[models.Outcome, models.TransactionPayload]{
		Name:    "outcome",
		Filters: models.DefaultFetchParams(time.Now(), cfg.PageLimit),
		Messages: resource.Messages{
			Load:   app.MsgFetchOutcomes,
			Add:    app.MsgAddOutcome,
			Update: app.MsgUpdateOutcome,
			Delete: app.MsgDeleteOutcome,
		},
		Demo:      func(models.FetchParams) []models.Outcome { return DemoOutcomes() },
		DemoDelay: cfg.DemoDelay,
		Validate:  models.TransactionPayload.ValidateWithCategory,
	}, log)
}
