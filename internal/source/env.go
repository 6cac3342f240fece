// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"strings"

	"github.com/MKhiriev/osseus-config/models"
)

// FromEnviron parses the namespaced variables of an environment slice in
// "KEY=value" form (as returned by os.Environ). Variables without the
// grouped or flat-override prefix are ignored.
func FromEnviron(environ []string) models.Map {
	vars := make(map[string]any)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !IsNamespaced(name) {
			continue
		}
		vars[name] = value
	}

	return ParseMap(vars)
}

// FromFlags parses CLI flags in command-line order.
func FromFlags(flags map[string]string, order []string) models.Map {
	return Parse(order, func(key string) any { return flags[key] })
}
