// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalStorageRepository returns a [LocalStorage] backed by the
// local_storage table of db.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localStorageRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrItemNotFound
		}
		r.logger.Err(err).
			Str("func", "localStorageRepository.Get").
			Str("key", key).
			Msg("failed to read local storage item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localStorageRepository) Set(ctx context.Context, key, value string) error {
	return r.Apply(ctx, Mutation{Set: map[string]string{key: value}})
}

func (r *localStorageRepository) Remove(ctx context.Context, keys ...string) error {
	return r.Apply(ctx, Mutation{Remove: keys})
}

func (r *localStorageRepository) Apply(ctx context.Context, m Mutation) error {
	if m.IsEmpty() {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "localStorageRepository.Apply").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if len(m.Set) > 0 {
		query, args, err := buildUpsertItemsQuery(m.Set)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "localStorageRepository.Apply").
				Int("items", len(m.Set)).
				Msg("failed to upsert local storage items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if len(m.Remove) > 0 {
		query, args, err := buildDeleteItemsQuery(m.Remove)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "localStorageRepository.Apply").
				Strs("keys", m.Remove).
				Msg("failed to delete local storage items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "localStorageRepository.Apply").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
