// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Supported secrets backends.
const (
	SecretsBackendHTTP = "http"
	SecretsBackendSQL  = "sql"
)

const (
	defaultSecretsPageSize = 100
	defaultConfigDir       = "config"
	defaultLogLevel        = "info"
)

// Bootstrap is the resolution context. It selects which environment and
// application are being resolved and how the secrets backend is reached.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       variable (or upper-cased flag) name for scalar fields.
type Bootstrap struct {
	// Environment selects the environment file and the secrets scope
	// (e.g. "dev", "prod").
	// Env: ENV
	Environment string `env:"ENV"`

	// Application selects the application-scoped secrets.
	// Env: APPLICATION_NAME
	Application string `env:"APPLICATION_NAME"`

	// SkipSecrets disables secrets retrieval entirely. Layers only override
	// with non-zero values, so --skip-secrets=false cannot undo
	// SKIP_SECRETS=true; unset the variable instead.
	// Env: SKIP_SECRETS
	SkipSecrets bool `env:"SKIP_SECRETS"`

	// Secrets holds the secrets backend connection settings.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// ConfigDir is the directory holding environment files. Relative paths
	// are resolved against WorkDir.
	// Env: CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// LogLevel is a zerolog level name.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// WorkDir is the process working directory captured at ingestion.
	WorkDir string

	// Environ is the raw process environment captured at ingestion.
	Environ []string

	// Args is the tokenized command line captured at ingestion.
	Args Args
}

// Secrets holds settings for the remote secrets backend.
type Secrets struct {
	// Backend is either "http" (Secrets Manager compatible endpoint) or
	// "sql" (secrets table in postgres or sqlite).
	// Env: SECRETS_BACKEND
	Backend string `env:"BACKEND"`

	// Endpoint is the base URL of the http backend.
	// Env: SECRETS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Region derives the http endpoint when Endpoint is empty.
	// Env: SECRETS_REGION
	Region string `env:"REGION"`

	// DSN is the connection string of the sql backend.
	// Env: SECRETS_DSN
	DSN string `env:"DSN"`

	// PageSize is the listing page-size limit.
	// Env: SECRETS_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Timeout bounds a single http backend call. Zero means no timeout.
	// Env: SECRETS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// EnvName returns the upper-cased environment name.
func (b *Bootstrap) EnvName() string {
	return strings.ToUpper(b.Environment)
}

// AppName returns the upper-cased application name.
func (b *Bootstrap) AppName() string {
	return strings.ToUpper(b.Application)
}

// EnvFileDir returns the directory searched for the environment file.
func (b *Bootstrap) EnvFileDir() string {
	if filepath.IsAbs(b.ConfigDir) {
		return b.ConfigDir
	}
	return filepath.Join(b.WorkDir, b.ConfigDir)
}

// SecretsRequested reports whether the selectors ask for secrets retrieval:
// both names are set and the skip flag is off.
func (b *Bootstrap) SecretsRequested() bool {
	return !b.SkipSecrets && b.Environment != "" && b.Application != ""
}

// SecretsConfigured reports whether the selected backend has enough
// settings to be reached.
func (b *Bootstrap) SecretsConfigured() bool {
	switch b.Secrets.Backend {
	case SecretsBackendSQL:
		return b.Secrets.DSN != ""
	default:
		return b.Secrets.Endpoint != "" || b.Secrets.Region != ""
	}
}

// Load ingests the command line (without the program name) and the process
// environment in "KEY=value" form, and returns the validated context.
func Load(argv []string, environ []string) (*Bootstrap, error) {
	args := ParseArgs(argv)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withArgs(args).
		build()
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %w", err)
	}

	cfg.WorkDir = wd
	cfg.Environ = environ
	cfg.Args = args

	return cfg, nil
}

func defaultBootstrap() *Bootstrap {
	return &Bootstrap{
		Secrets: Secrets{
			Backend:  SecretsBackendHTTP,
			PageSize: defaultSecretsPageSize,
		},
		ConfigDir: defaultConfigDir,
		LogLevel:  defaultLogLevel,
	}
}
