// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/osseus-config/internal/adapter"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/models"
)

// secretsRepository is the SQL implementation of [adapter.SecretsBackend]. It
// reads the "secrets" table created by the bundled migrations. The
// continuation token is the decimal row offset of the next page.
type secretsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSecretsRepository constructs a SQL [adapter.SecretsBackend] over db.
func NewSecretsRepository(db *DB, log *logger.Logger) adapter.SecretsBackend {
	log.Debug().Str("dialect", db.dialect).Msg("creating secrets repository")
	return &secretsRepository{
		db:     db,
		logger: log,
	}
}

// ListSecrets implements [adapter.SecretsBackend]. A page that comes back
// full carries a next token; a short page ends the listing.
//
// Error handling:
//   - non-positive limit or a token that is not a non-negative integer
//     → [adapter.ErrInvalidParameter];
//   - driver errors → mapped by [DB.mapSQLError].
func (r *secretsRepository) ListSecrets(ctx context.Context, nextToken string, limit int) (models.SecretPage, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return models.SecretPage{}, fmt.Errorf("%w: limit must be positive, got %d", adapter.ErrInvalidParameter, limit)
	}

	offset := 0
	if nextToken != "" {
		parsed, err := strconv.Atoi(nextToken)
		if err != nil || parsed < 0 {
			return models.SecretPage{}, fmt.Errorf("%w: malformed next token %q", adapter.ErrInvalidParameter, nextToken)
		}
		offset = parsed
	}

	query, args, err := buildListSecretsQuery(ctx, r.db.placeholder(), limit, offset)
	if err != nil {
		return models.SecretPage{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*secretsRepository.ListSecrets").Msg("error executing list query")
		return models.SecretPage{}, r.db.mapSQLError(err)
	}
	defer rows.Close()

	page := models.SecretPage{Secrets: make([]models.SecretDescriptor, 0, limit)}
	for rows.Next() {
		var s models.SecretDescriptor
		if err = rows.Scan(&s.ID, &s.Name); err != nil {
			log.Err(err).Str("func", "*secretsRepository.ListSecrets").Msg("error scanning secrets row")
			return models.SecretPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		page.Secrets = append(page.Secrets, s)
	}
	if err = rows.Err(); err != nil {
		return models.SecretPage{}, r.db.mapSQLError(err)
	}

	if len(page.Secrets) == limit {
		page.NextToken = strconv.Itoa(offset + limit)
	}

	return page, nil
}

// GetSecretValue implements [adapter.SecretsBackend].
//
// Error handling:
//   - blank id → [adapter.ErrInvalidParameter];
//   - no matching row → [adapter.ErrSecretNotFound].
func (r *secretsRepository) GetSecretValue(ctx context.Context, id string) (string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: empty secret id", adapter.ErrInvalidParameter)
	}

	query, args, err := buildGetSecretValueQuery(ctx, r.db.placeholder(), id)
	if err != nil {
		return "", err
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		log.Err(err).Str("func", "*secretsRepository.GetSecretValue").Str("secret_id", id).Msg("error reading secret value")
		return "", fmt.Errorf("get secret value %q: %w", id, r.db.mapSQLError(err))
	}

	return value, nil
}
