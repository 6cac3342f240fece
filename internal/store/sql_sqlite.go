// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/osseus-config/internal/logger"
)

func NewConnectSQLite(ctx context.Context, dsn string, create bool, log *logger.Logger) (*DB, error) {
	if err := checkLocalDBFile(dsn, create); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error preparing database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

// checkLocalDBFile makes sure a plain-path DSN points at an existing file,
// creating it when create is set. URI and in-memory DSNs are left to the
// driver.
func checkLocalDBFile(dsn string, create bool) error {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.HasPrefix(dsn, ":memory:") {
		return nil
	}

	_, err := os.Stat(dsn)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking DB file: %w", err)
	}
	if !create {
		return fmt.Errorf("%w: %s", ErrDatabaseMissing, dsn)
	}

	f, err := os.Create(dsn)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}

func sqliteError(err error) sqlite3.ErrNo {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code
	}

	return 0
}
