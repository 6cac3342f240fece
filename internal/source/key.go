// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "strings"

// Namespace prefixes recognised by [Normalize].
const (
	GroupedPrefix      = "osseus_"
	FlatOverridePrefix = "cfg_"
)

// KeyKind classifies a normalized key.
type KeyKind int

const (
	// KindPlain keys are stored at the top level unchanged.
	KindPlain KeyKind = iota
	// KindFlatOverride keys ("cfg_<name>") are stored at the top level
	// under <name>.
	KindFlatOverride
	// KindGrouped keys ("osseus_<group>_<rest>") are stored under
	// "osseus_<group>" with <rest> as the inner key.
	KindGrouped
)

// String implements fmt.Stringer.
func (k KeyKind) String() string {
	switch k {
	case KindFlatOverride:
		return "flat-override"
	case KindGrouped:
		return "grouped"
	default:
		return "plain"
	}
}

// Key is the normalized form of a raw configuration key.
// Inner is meaningful only for [KindGrouped] and may be empty.
type Key struct {
	Top   string
	Inner string
	Kind  KeyKind
}

// Normalize lower-cases raw and classifies it into one of the three
// namespace forms. It is a pure function and never fails.
func Normalize(raw string) Key {
	key := strings.ToLower(raw)

	switch {
	case strings.HasPrefix(key, GroupedPrefix):
		segments := strings.Split(key, "_")
		return Key{
			Top:   segments[0] + "_" + segments[1],
			Inner: strings.Join(segments[2:], "_"),
			Kind:  KindGrouped,
		}
	case strings.HasPrefix(key, FlatOverridePrefix):
		return Key{Top: strings.TrimPrefix(key, FlatOverridePrefix), Kind: KindFlatOverride}
	default:
		return Key{Top: key, Kind: KindPlain}
	}
}

// IsNamespaced reports whether raw carries one of the recognised prefixes.
// Only such variables are read from the process environment.
func IsNamespaced(raw string) bool {
	key := strings.ToLower(raw)
	return strings.HasPrefix(key, GroupedPrefix) || strings.HasPrefix(key, FlatOverridePrefix)
}
