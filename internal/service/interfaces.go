// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements configuration resolution: the secrets fetcher
// that pulls scoped secrets from a [adapter.SecretsBackend], and the
// resolver that merges the environment, file, secrets and command-line
// sources into a [models.Configuration].
package service

import (
	"context"

	"github.com/MKhiriev/osseus-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecretsFetcher retrieves the secrets relevant to the resolved environment
// and application and folds them into one mapping.
type SecretsFetcher interface {
	Fetch(ctx context.Context) (models.Map, error)
}

// FileLoader loads the per-environment configuration file.
type FileLoader interface {
	Load(ctx context.Context, env string) (models.Map, error)
}

// InstanceProvider reports metadata about the running host.
type InstanceProvider interface {
	GetInstanceID(ctx context.Context) (models.Instance, error)
}

// Resolver runs one configuration resolution.
type Resolver interface {
	Resolve(ctx context.Context) (models.Configuration, error)
}
