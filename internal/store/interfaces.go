// Package store provides the persistence-backed sources of osseus-config:
// the SQL secrets backend (PostgreSQL through pgx, SQLite through
// go-sqlite3) and the environment-file loader.
package store

import "github.com/MKhiriev/osseus-config/internal/adapter"

// ErrorClassificator decides whether a failed database operation may
// succeed on a later attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

var _ adapter.SecretsBackend = (*secretsRepository)(nil)
