// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// ClientStorages groups the client-side storages passed to the service
// layer.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed key-value store holding the
	// persisted session.
	LocalStorage LocalStorage

	db *DB
}

// MemoryDSN selects [MemoryStorage] instead of a database file. The session
// is then forgotten when the process exits.
const MemoryDSN = "memory"

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, applies
// pending migrations and wires the repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		logger.Warn().Msg("using in-memory storage, the session will not be kept")
		return &ClientStorages{LocalStorage: NewMemoryStorage()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorageRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
