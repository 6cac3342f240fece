// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [Bootstrap] can drive a resolution run.
func (cfg *Bootstrap) validate() error {
	switch cfg.Secrets.Backend {
	case SecretsBackendHTTP, SecretsBackendSQL:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSecretsBackend, cfg.Secrets.Backend)
	}

	if cfg.Secrets.PageSize <= 0 {
		return fmt.Errorf("%w: secrets page size must be positive, got %d", ErrInvalidBootstrap, cfg.Secrets.PageSize)
	}

	if cfg.Secrets.Timeout < 0 {
		return fmt.Errorf("%w: secrets timeout must not be negative", ErrInvalidBootstrap)
	}

	return nil
}
