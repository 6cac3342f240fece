package config

import "errors"

// Validation errors returned by [Bootstrap.validate] when the resolution
// context cannot be used.
var (
	// ErrInvalidBootstrap indicates an invalid setting such as a
	// non-positive secrets page size or a negative timeout.
	ErrInvalidBootstrap = errors.New("invalid bootstrap configuration")
	// ErrUnsupportedSecretsBackend indicates a SECRETS_BACKEND value other
	// than "http" or "sql".
	ErrUnsupportedSecretsBackend = errors.New("unsupported secrets backend")
)
