// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

const (
	incomeCategoriesKey  = "income"
	outcomeCategoriesKey = "outcome"
)

// owner identifies whose categories are cached.
type owner struct {
	state  session.State
	userID int64
}

type categoryCacheEntry struct {
	owner      owner
	categories []models.Category
}

// CategoryService serves income and expense categories. Results are cached
// for the current session owner, so a logout or a different login fetches
// again. Guests get the demo categories.
type CategoryService struct {
	income  adapter.IncomeAPI
	outcome adapter.OutcomeAPI
	session SessionController
	logger  *logger.Logger

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]categoryCacheEntry
}

// NewCategoryService returns a CategoryService with an empty cache.
func NewCategoryService(income adapter.IncomeAPI, outcome adapter.OutcomeAPI, session SessionController, log *logger.Logger) *CategoryService {
	return &CategoryService{
		income:  income,
		outcome: outcome,
		session: session,
		logger:  log.WithComponent("categories"),
		cache:   make(map[string]categoryCacheEntry),
	}
}

// Income returns the income categories.
func (s *CategoryService) Income(ctx context.Context) ([]models.Category, error) {
	return s.get(ctx, incomeCategoriesKey, s.income.IncomeCategories, demoIncomeCategories)
}

// Outcome returns the expense categories.
func (s *CategoryService) Outcome(ctx context.Context) ([]models.Category, error) {
	return s.get(ctx, outcomeCategoriesKey, s.outcome.OutcomeCategories, demoOutcomeCategories)
}

// Invalidate drops every cached list.
func (s *CategoryService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.cache)
}

func (s *CategoryService) get(
	ctx context.Context,
	key string,
	fetch func(context.Context) ([]models.Category, error),
	demo []models.Category,
) ([]models.Category, error) {
	if s.session.IsGuest() {
		return slices.Clone(demo), nil
	}

	current := s.owner()
	s.mu.Lock()
	entry, ok := s.cache[key]
	s.mu.Unlock()
	if ok && entry.owner == current {
		return slices.Clone(entry.categories), nil
	}

	flightKey := fmt.Sprintf("%s/%d/%d", key, current.state, current.userID)
	v, err, _ := s.group.Do(flightKey, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "CategoryService.get").Str("kind", key).Msg("failed to fetch categories")
		return nil, err
	}

	categories := v.([]models.Category)
	s.mu.Lock()
	s.cache[key] = categoryCacheEntry{owner: current, categories: categories}
	s.mu.Unlock()

	return slices.Clone(categories), nil
}

func (s *CategoryService) owner() owner {
	snap := s.session.Snapshot()
	o := owner{state: snap.State}
	if snap.User != nil {
		o.userID = snap.User.ID
	}
	return o
}

// CategoryName finds the name of id in categories, or
// [models.Uncategorized].
func CategoryName(categories []models.Category, id *int64) string {
	if id == nil {
		return models.Uncategorized
	}
	for _, c := range categories {
		if c.ID == *id {
			return c.Name
		}
	}
	return models.Uncategorized
}
