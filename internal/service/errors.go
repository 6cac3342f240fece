package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfigurationFound is returned when the merged result holds no
	// key in the reserved osseus_ namespace.
	ErrNoConfigurationFound = errors.New("no configuration found")

	// ErrSecretsFetch is returned when a matched secret cannot be fetched.
	ErrSecretsFetch = errors.New("secrets fetch failed")

	// ErrMalformedSecret is returned when a secret payload is not a JSON
	// object. It also matches [ErrSecretsFetch].
	ErrMalformedSecret = fmt.Errorf("%w: malformed secret payload", ErrSecretsFetch)
)
