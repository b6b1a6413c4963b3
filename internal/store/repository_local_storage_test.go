// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

func newTestLocalStorageRepo(t *testing.T) (LocalStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewLocalStorageRepository(&DB{DB: db, logger: l}, l), mock
}

func TestLocalStorageRepository_Get(t *testing.T) {
	selectQuery := regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = ?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)
		mock.ExpectQuery(selectQuery).
			WithArgs("authToken").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))

		v, err := repo.Get(context.Background(), "authToken")
		require.NoError(t, err)
		assert.Equal(t, "tok", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)
		mock.ExpectQuery(selectQuery).
			WithArgs("authUser").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "authUser")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)
		mock.ExpectQuery(selectQuery).
			WithArgs("authUser").
			WillReturnError(assert.AnError)

		_, err := repo.Get(context.Background(), "authUser")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLocalStorageRepository_Set(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("isGuestMode", "true").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Set(context.Background(), "isGuestMode", "true"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorageRepository_Remove(t *testing.T) {
	repo, mock := newTestLocalStorageRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key IN (?,?)")).
		WithArgs("authToken", "refreshToken").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Remove(context.Background(), "authToken", "refreshToken"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorageRepository_Apply(t *testing.T) {
	t.Run("writes then removes in one transaction", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO local_storage").
			WithArgs("authToken", "a", "authUser", "{}").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM local_storage").
			WithArgs("isGuestMode").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Apply(context.Background(), Mutation{
			Set:    map[string]string{"authToken": "a", "authUser": "{}"},
			Remove: []string{"isGuestMode"},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty mutation touches nothing", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)

		require.NoError(t, repo.Apply(context.Background(), Mutation{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed write rolls back", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO local_storage").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Apply(context.Background(), Mutation{Set: map[string]string{"authToken": "a"}})
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)

		mock.ExpectBegin().WillReturnError(assert.AnError)

		err := repo.Apply(context.Background(), Mutation{Remove: []string{"authToken"}})
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit error", func(t *testing.T) {
		repo, mock := newTestLocalStorageRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM local_storage").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(assert.AnError)

		err := repo.Apply(context.Background(), Mutation{Remove: []string{"authToken"}})
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}
