// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/osseus-config/internal/adapter"
	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/service"
	"github.com/MKhiriev/osseus-config/internal/store"
	"github.com/MKhiriev/osseus-config/internal/utils"
	"github.com/MKhiriev/osseus-config/models"
)

// App holds the dependencies of one resolution.
type App struct {
	resolver service.Resolver
	db       *store.DB
}

// New builds every dependency described by cfg. The secrets backend is only
// constructed when secrets are requested and the backend is configured.
func New(ctx context.Context, cfg *config.Bootstrap, log *logger.Logger) (*App, error) {
	log, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidBootstrap, err)
	}

	backend, db, err := newSecretsBackend(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("backend", cfg.Secrets.Backend).Msg(MsgSecretsBackendUnavailable)
		return nil, err
	}

	resolver := service.NewResolver(
		cfg,
		service.NewSecretsService(cfg, backend, log),
		store.NewFileConfigStore(cfg.EnvFileDir(), log),
		utils.NewHostInstanceProvider(),
		log,
	)

	return &App{resolver: resolver, db: db}, nil
}

// Resolve runs one configuration resolution. Failures are logged by the
// resolver together with the run id.
func (a *App) Resolve(ctx context.Context) (models.Configuration, error) {
	return a.resolver.Resolve(ctx)
}

// Close releases the SQL secrets connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newSecretsBackend(ctx context.Context, cfg *config.Bootstrap, log *logger.Logger) (adapter.SecretsBackend, *store.DB, error) {
	if !cfg.SecretsRequested() {
		return nil, nil, nil
	}
	if !cfg.SecretsConfigured() {
		log.Warn().Str("backend", cfg.Secrets.Backend).Msg(MsgSecretsBackendNotConfigured)
		return nil, nil, nil
	}

	switch cfg.Secrets.Backend {
	case config.SecretsBackendSQL:
		db, err := store.NewSecretsDB(ctx, cfg.Secrets.DSN, false, log)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", adapter.ErrBackendUnavailable, err)
		}
		return store.NewSecretsRepository(db, log), db, nil
	default:
		backend, err := adapter.NewHTTPSecretsBackend(cfg.Secrets, log)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	}
}
