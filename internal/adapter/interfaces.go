// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the remote secrets
// backend.
//
// The primary abstraction is [SecretsBackend], which decouples the secrets
// service from the underlying protocol. The package ships an HTTP
// implementation speaking the Secrets Manager JSON 1.1 protocol
// ([NewHTTPSecretsBackend]); the SQL implementation lives in the store
// package.
//
// Error values defined in errors.go are mapped from the backend error type by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// transport (e.g. [ErrSecretNotFound] for ResourceNotFoundException).
package adapter

import (
	"context"

	"github.com/MKhiriev/osseus-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_backend_mock.go -package=mock

// SecretsBackend is a paginated key/value secrets service.
type SecretsBackend interface {
	// ListSecrets returns one page of at most limit descriptors, starting at
	// the position encoded by nextToken (empty for the first page).
	ListSecrets(ctx context.Context, nextToken string, limit int) (models.SecretPage, error)

	// GetSecretValue returns the string payload of the secret identified by
	// id. An empty string means the secret carries no value.
	GetSecretValue(ctx context.Context, id string) (string, error)
}
