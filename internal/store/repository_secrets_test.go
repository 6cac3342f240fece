// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/osseus-config/internal/adapter"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/models"
)

const (
	listQuery = "SELECT arn, name FROM secrets ORDER BY name, arn LIMIT "
	getQuery  = "SELECT secret_string FROM secrets WHERE arn = $1"
)

func newTestSecretsRepo(t *testing.T) (*secretsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &secretsRepository{
		db: &DB{
			DB:                 db,
			dialect:            DialectPostgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestListSecrets_FullPageHasNextToken(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery + "2 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows([]string{"arn", "name"}).
			AddRow("arn:1", "PROD/GLOBAL_A").
			AddRow("arn:2", "PROD/MYAPP_B"))

	page, err := repo.ListSecrets(context.Background(), "", 2)
	require.NoError(t, err)

	assert.Equal(t, []models.SecretDescriptor{
		{ID: "arn:1", Name: "PROD/GLOBAL_A"},
		{ID: "arn:2", Name: "PROD/MYAPP_B"},
	}, page.Secrets)
	assert.Equal(t, "2", page.NextToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSecrets_ShortPageEndsListing(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery + "2 OFFSET 4")).
		WillReturnRows(sqlmock.NewRows([]string{"arn", "name"}).AddRow("arn:5", "PROD/MYAPP_C"))

	page, err := repo.ListSecrets(context.Background(), "4", 2)
	require.NoError(t, err)

	assert.Len(t, page.Secrets, 1)
	assert.Empty(t, page.NextToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSecrets_InvalidParameters(t *testing.T) {
	repo, _ := newTestSecretsRepo(t)

	_, err := repo.ListSecrets(context.Background(), "", 0)
	assert.ErrorIs(t, err, adapter.ErrInvalidParameter)

	_, err = repo.ListSecrets(context.Background(), "abc", 10)
	assert.ErrorIs(t, err, adapter.ErrInvalidParameter)

	_, err = repo.ListSecrets(context.Background(), "-10", 10)
	assert.ErrorIs(t, err, adapter.ErrInvalidParameter)
}

func TestListSecrets_UndefinedTable(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.ListSecrets(context.Background(), "", 10)
	assert.ErrorIs(t, err, adapter.ErrInvalidRequest)
}

func TestListSecrets_ConnectionFailureIsUnavailable(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.ListSecrets(context.Background(), "", 10)
	assert.ErrorIs(t, err, adapter.ErrBackendUnavailable)
}

func TestGetSecretValue_Success(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("arn:1").
		WillReturnRows(sqlmock.NewRows([]string{"secret_string"}).AddRow(`{"osseus_db_host":"h"}`))

	value, err := repo.GetSecretValue(context.Background(), "arn:1")
	require.NoError(t, err)
	assert.Equal(t, `{"osseus_db_host":"h"}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSecretValue_NotFound(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("arn:missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSecretValue(context.Background(), "arn:missing")
	assert.ErrorIs(t, err, adapter.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "arn:missing")
}

func TestGetSecretValue_EmptyID(t *testing.T) {
	repo, _ := newTestSecretsRepo(t)

	_, err := repo.GetSecretValue(context.Background(), "  ")
	assert.ErrorIs(t, err, adapter.ErrInvalidParameter)
}

func TestGetSecretValue_InvalidParameterValue(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("arn:1").
		WillReturnError(pgError(pgerrcode.InvalidParameterValue))

	_, err := repo.GetSecretValue(context.Background(), "arn:1")
	assert.ErrorIs(t, err, adapter.ErrInvalidParameter)
}

func TestGetSecretValue_UnknownError(t *testing.T) {
	repo, mock := newTestSecretsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("arn:1").
		WillReturnError(errors.New("boom"))

	_, err := repo.GetSecretValue(context.Background(), "arn:1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, IsPostgresDSN("PostgreSQL://localhost/db"))
	assert.False(t, IsPostgresDSN("secrets.db"))
	assert.False(t, IsPostgresDSN("file:secrets.db?mode=ro"))
}

func TestClassifyPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestCheckLocalDBFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/secrets.db"

	err := checkLocalDBFile(path, false)
	assert.ErrorIs(t, err, ErrDatabaseMissing)

	require.NoError(t, checkLocalDBFile(path, true))
	assert.FileExists(t, path)
	assert.NoError(t, checkLocalDBFile(path, false))
	assert.NoError(t, checkLocalDBFile("file:other.db?mode=ro", false))
}
