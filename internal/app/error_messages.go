// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires osseus-config together: it builds the secrets backend,
// the environment-file loader, the host provider and the resolver from a
// [config.Bootstrap], and runs one resolution.
//
// The Msg* constants are the log messages shared by the wiring code and the
// commands, kept in one place for consistent wording.
package app

const (
	// MsgInvalidBootstrap is logged when the resolution context cannot be
	// built from the command line and environment.
	MsgInvalidBootstrap = "invalid resolution context"

	// MsgResolutionFailed is logged when a resolution run is rejected.
	MsgResolutionFailed = "configuration resolution failed"

	// MsgSecretsBackendNotConfigured is logged when secrets are requested but
	// the selected backend has no endpoint, region or DSN.
	MsgSecretsBackendNotConfigured = "secrets requested but no backend is configured, skipping secrets"

	// MsgSecretsBackendUnavailable is logged when the secrets backend cannot
	// be constructed or reached.
	MsgSecretsBackendUnavailable = "secrets backend unavailable"

	// MsgMigrationFailed is logged when applying the secrets-table
	// migrations fails.
	MsgMigrationFailed = "secrets table migration failed"
)
