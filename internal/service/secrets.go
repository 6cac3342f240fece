// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/osseus-config/internal/adapter"
	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/source"
	"github.com/MKhiriev/osseus-config/models"
)

const globalScope = "GLOBAL"

type secretsService struct {
	backend  adapter.SecretsBackend
	env      string
	app      string
	skip     bool
	pageSize int

	logger *logger.Logger
}

// NewSecretsService builds a [SecretsFetcher] scoped to the environment and
// application of cfg. backend may be nil when no backend is configured, in
// which case Fetch contributes nothing.
func NewSecretsService(cfg *config.Bootstrap, backend adapter.SecretsBackend, log *logger.Logger) SecretsFetcher {
	return &secretsService{
		backend:  backend,
		env:      cfg.EnvName(),
		app:      cfg.AppName(),
		skip:     cfg.SkipSecrets,
		pageSize: cfg.Secrets.PageSize,
		logger:   log,
	}
}

// Fetch lists every secret page, keeps the entries named
// <ENV>/GLOBAL_* and <ENV>/<APP>_*, and fetches them one at a time, globals
// first, merging each JSON payload over the previous ones.
//
// A listing failure ends pagination and keeps what was collected. A fetch
// failure or malformed payload aborts with [ErrSecretsFetch]. Empty values
// are skipped.
func (s *secretsService) Fetch(ctx context.Context) (models.Map, error) {
	log := logger.FromContext(ctx)

	switch {
	case s.skip:
		log.Debug().Msg("secrets retrieval disabled")
		return models.Map{}, nil
	case s.env == "" || s.app == "":
		log.Debug().Str("env", s.env).Str("application", s.app).Msg("secrets retrieval skipped: environment or application not set")
		return models.Map{}, nil
	case s.backend == nil:
		log.Debug().Msg("secrets retrieval skipped: no backend configured")
		return models.Map{}, nil
	}

	global, scoped := s.list(ctx)

	acc := models.Map{}
	for _, secret := range append(global, scoped...) {
		value, err := s.backend.GetSecretValue(ctx, secret.ID)
		if err != nil {
			event := log.Error().Err(err).Str("secret_id", secret.ID)
			switch {
			case errors.Is(err, adapter.ErrSecretNotFound):
				event.Msg("secret not found")
			case errors.Is(err, adapter.ErrInvalidRequest):
				event.Msg("invalid request for secret")
			case errors.Is(err, adapter.ErrInvalidParameter):
				event.Msg("invalid parameter for secret")
			default:
				event.Msg("error fetching secret")
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrSecretsFetch, secret.ID, err)
		}

		if strings.TrimSpace(value) == "" {
			log.Warn().Str("secret_id", secret.ID).Str("name", secret.Name).Msg("secret has an empty value, skipping")
			continue
		}

		parsed, err := source.ParseJSONObject(value)
		if err != nil {
			log.Error().Err(err).Str("secret_id", secret.ID).Msg("malformed secret payload")
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSecret, secret.ID, err)
		}

		if acc, err = source.Merge(acc, parsed); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSecretsFetch, secret.ID, err)
		}
	}

	log.Debug().Int("global", len(global)).Int("application", len(scoped)).Int("keys", len(acc)).Msg("secrets fetched")

	return acc, nil
}

// list pages through the backend and partitions matching descriptors into
// the global and application buckets.
func (s *secretsService) list(ctx context.Context) (global, scoped []models.SecretDescriptor) {
	log := logger.FromContext(ctx)

	appPrefix := s.env + "/" + s.app + "_"
	globalPrefix := s.env + "/" + globalScope + "_"

	seen := make(map[string]struct{})
	token := ""
	for page := 1; ; page++ {
		result, err := s.backend.ListSecrets(ctx, token, s.pageSize)
		if err != nil {
			log.Warn().Err(err).Int("page", page).Msg("listing secrets failed, continuing with collected entries")
			return global, scoped
		}

		for _, secret := range result.Secrets {
			name := strings.ToUpper(secret.Name)
			switch {
			case strings.Contains(name, appPrefix):
				scoped = append(scoped, secret)
			case strings.Contains(name, globalPrefix):
				global = append(global, secret)
			}
		}

		if result.NextToken == "" {
			return global, scoped
		}
		if _, ok := seen[result.NextToken]; ok {
			log.Warn().Str("next_token", result.NextToken).Msg("secrets listing repeated a continuation token, stopping")
			return global, scoped
		}
		seen[result.NextToken] = struct{}{}
		token = result.NextToken
	}
}
