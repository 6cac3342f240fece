// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	secretsTable = "secrets"

	columnARN          = "arn"
	columnName         = "name"
	columnSecretString = "secret_string"
)

// buildListSecretsQuery selects one page of descriptors ordered by name then
// arn, so that offsets are stable between calls.
func buildListSecretsQuery(_ context.Context, ph sq.PlaceholderFormat, limit, offset int) (string, []any, error) {
	query, args, err := sq.
		Select(columnARN, columnName).
		From(secretsTable).
		OrderBy(columnName, columnARN).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetSecretValueQuery(_ context.Context, ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.
		Select(columnSecretString).
		From(secretsTable).
		Where(sq.Eq{columnARN: id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
