// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/source"
	"github.com/MKhiriev/osseus-config/internal/utils"
	"github.com/MKhiriev/osseus-config/models"
)

type resolver struct {
	cfg       *config.Bootstrap
	secrets   SecretsFetcher
	files     FileLoader
	instances InstanceProvider
	runIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewResolver(cfg *config.Bootstrap, secrets SecretsFetcher, files FileLoader, instances InstanceProvider, log *logger.Logger) Resolver {
	return &resolver{
		cfg:       cfg,
		secrets:   secrets,
		files:     files,
		instances: instances,
		runIDs:    utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// Resolve gathers the four sources concurrently and merges them with
// environment < file < secrets < command line precedence. The result carries
// env, application_name, hostInfo and keys.
//
// A secrets fetch failure, a host lookup failure or a result without any
// osseus_ group fails the run; a missing environment or environment file
// only empties that source.
func (r *resolver) Resolve(ctx context.Context) (models.Configuration, error) {
	runID := r.runIDs.Generate()
	log := &logger.Logger{Logger: r.logger.With().Str("run_id", runID).Logger()}
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	if r.cfg.Environment == "" {
		log.Warn().Msg("no environment selected: environment file and secrets are skipped")
	}

	var envLayer, fileLayer, secretsLayer, cliLayer models.Map

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		envLayer = source.FromEnviron(r.cfg.Environ)
		return nil
	})
	g.Go(func() error {
		fileLayer = r.loadFile(gctx)
		return nil
	})
	g.Go(func() error {
		m, err := r.secrets.Fetch(gctx)
		if err != nil {
			return err
		}
		secretsLayer = m
		return nil
	})
	g.Go(func() error {
		cliLayer = source.FromFlags(r.cfg.Args.Flags, r.cfg.Args.Order)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Err(err).Msg("configuration resolution failed")
		return nil, err
	}

	merged, err := source.Merge(envLayer, fileLayer, secretsLayer, cliLayer)
	if err != nil {
		return nil, fmt.Errorf("error merging configuration sources: %w", err)
	}

	instance, err := r.instances.GetInstanceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting host metadata: %w", err)
	}

	result := models.NewConfiguration(merged, r.cfg.EnvName(), r.cfg.AppName(), instance.HostInfo())
	if !result.HasReservedGroup() {
		log.Error().Strs("keys", result.Keys()).Msg("no configuration found")
		return nil, fmt.Errorf("%w: set at least one %s* key through the environment, the %s file, secrets or a --%s* flag",
			ErrNoConfigurationFound, source.GroupedPrefix, r.envFileHint(), source.GroupedPrefix)
	}

	log.Info().Str("env", result.Env()).Str("application", result.ApplicationName()).Msg("configuration resolved")

	return result, nil
}

func (r *resolver) loadFile(ctx context.Context) models.Map {
	if r.cfg.Environment == "" {
		return models.Map{}
	}

	log := logger.FromContext(ctx)

	m, err := r.files.Load(ctx, r.cfg.Environment)
	if err != nil {
		event := log.Warn()
		if errors.Is(err, context.Canceled) {
			event = log.Debug()
		}
		event.Err(err).Str("dir", r.cfg.EnvFileDir()).Msg("environment file not loaded")
		return models.Map{}
	}

	return m
}

func (r *resolver) envFileHint() string {
	if r.cfg.Environment == "" {
		return "environment"
	}
	return r.cfg.EnvFileDir() + "/" + r.cfg.Environment
}
