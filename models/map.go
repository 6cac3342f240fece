// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Map is the canonical nested mapping produced by every configuration source.
//
// Top-level values are typed results of value coercion. Grouped keys hold a
// nested map[string]any one level deep. Nested maps are always plain
// map[string]any (never Map) so that layers can be deep-merged without type
// mismatches.
type Map map[string]any

// Clone returns a deep copy of m. Nested maps and slices are copied; scalar
// values are shared.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}

	out := make(Map, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[k] = cloneValue(inner)
		}
		return out
	case Map:
		return map[string]any(value.Clone())
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
