// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Environment file errors. Both are soft: the resolver logs them and the
// file contributes nothing.
var (
	// ErrConfigFileNotFound is returned when no candidate file exists for
	// the requested environment.
	ErrConfigFileNotFound = errors.New("environment file not found")

	// ErrConfigFileUnreadable is returned when a candidate file exists but
	// cannot be read or decoded into a mapping.
	ErrConfigFileUnreadable = errors.New("environment file unreadable")
)

// Low-level database errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan secrets rows")

	// ErrDatabaseMissing is returned when a SQLite secrets database file does
	// not exist and may not be created.
	ErrDatabaseMissing = errors.New("sqlite database file does not exist")
)
