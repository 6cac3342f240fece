// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/osseus-config/models"
)

// Parse applies [Normalize] and [Coerce] to every key in order and writes the
// results into a fresh [models.Map]. Grouped keys are written into
// result[Top][Inner]; other keys into result[Top]. Later keys overwrite
// earlier ones at the same path.
func Parse(keys []string, lookup func(key string) any) models.Map {
	result := make(models.Map, len(keys))

	for _, raw := range keys {
		key := Normalize(raw)
		value := Coerce(lookup(raw)).Data

		if key.Kind != KindGrouped {
			result[key.Top] = value
			continue
		}

		group, ok := result[key.Top].(map[string]any)
		if !ok {
			group = make(map[string]any)
			result[key.Top] = group
		}
		group[key.Inner] = value
	}

	return result
}

// ParseMap parses every entry of m in sorted key order.
func ParseMap(m map[string]any) models.Map {
	return Parse(sortedKeys(m), func(key string) any { return m[key] })
}

// ParseJSONObject decodes payload as a JSON object and parses all of its keys.
func ParseJSONObject(payload string) (models.Map, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("decode json object: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode json object: payload is not an object")
	}

	return ParseMap(raw), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
