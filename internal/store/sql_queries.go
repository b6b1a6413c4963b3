// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

// sqlb renders '?' placeholders, which is what go-sqlite3 expects.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	query, args, err := sqlb.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertItemsQuery builds one multi-row upsert. Keys are sorted so the
// statement is deterministic.
func buildUpsertItemsQuery(items map[string]string) (string, []any, error) {
	keys := make([]string, 0, len(items))
	for k := range items {
		if k == "" {
			return "", nil, ErrEmptyKey
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	builder := sqlb.
		Insert(localStorageTable).
		Columns("key", "value")
	for _, k := range keys {
		builder = builder.Values(k, items[k])
	}

	query, args, err := builder.
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteItemsQuery(keys []string) (string, []any, error) {
	query, args, err := sqlb.
		Delete(localStorageTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
