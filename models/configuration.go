// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// Well-known top-level keys of a resolved [Configuration].
const (
	KeyEnv             = "env"
	KeyApplicationName = "application_name"
	KeyHostInfo        = "hostInfo"
	KeyKeys            = "keys"
)

// ReservedPrefix is the grouped-key namespace. A resolved configuration must
// contain at least one top-level key with this prefix.
const ReservedPrefix = "osseus_"

// HostInfo identifies the process the configuration was resolved for.
type HostInfo struct {
	Hostname string `json:"hostname"`
	PID      int    `json:"pid"`
}

// Configuration is the final, merged configuration object handed to the
// hosting application. Besides every top-level key contributed by the
// sources it always carries [KeyEnv], [KeyApplicationName], [KeyHostInfo]
// and [KeyKeys].
//
// A Configuration is built once per process and is read-only afterwards.
type Configuration map[string]any

// NewConfiguration assembles the final object from the merged source layers
// and the resolution identity. The identity fields are written after the
// merged layers, so a source cannot shadow them.
func NewConfiguration(merged Map, env, application string, host HostInfo) Configuration {
	cfg := make(Configuration, len(merged)+4)
	for k, v := range merged {
		cfg[k] = v
	}

	cfg[KeyEnv] = env
	cfg[KeyApplicationName] = application
	cfg[KeyHostInfo] = host
	delete(cfg, KeyKeys)

	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cfg[KeyKeys] = keys

	return cfg
}

// Env returns the resolved environment name.
func (c Configuration) Env() string {
	env, _ := c[KeyEnv].(string)
	return env
}

// ApplicationName returns the resolved application name.
func (c Configuration) ApplicationName() string {
	name, _ := c[KeyApplicationName].(string)
	return name
}

// HostInfo returns the host metadata recorded during resolution.
func (c Configuration) HostInfo() HostInfo {
	host, _ := c[KeyHostInfo].(HostInfo)
	return host
}

// Keys returns the sorted list of top-level keys.
func (c Configuration) Keys() []string {
	keys, _ := c[KeyKeys].([]string)
	return keys
}

// Group returns the nested map stored under a grouped top-level key such as
// "osseus_db". ok is false when the key is absent or not a group.
func (c Configuration) Group(name string) (map[string]any, bool) {
	group, ok := c[name].(map[string]any)
	return group, ok
}

// HasReservedGroup reports whether at least one top-level key belongs to the
// reserved grouped namespace and holds a group. A scalar under an osseus_
// name (e.g. from cfg_osseus_x) does not count.
func (c Configuration) HasReservedGroup() bool {
	for k, v := range c {
		if !strings.HasPrefix(k, ReservedPrefix) {
			continue
		}
		if _, ok := v.(map[string]any); ok {
			return true
		}
	}
	return false
}
