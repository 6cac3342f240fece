package adapter

import "errors"

// Backend error kinds. The secrets service logs these with the offending
// secret id before failing.
var (
	ErrSecretNotFound   = errors.New("secret not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidParameter = errors.New("invalid parameter")
)

var (
	ErrBackendNotConfigured = errors.New("secrets backend not configured")
	ErrBackendUnavailable   = errors.New("secrets backend unavailable")
)
