// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
)

// Pseudo-keys that never contribute configuration.
var reservedFlags = map[string]struct{}{
	"_":       {},
	"$0":      {},
	"help":    {},
	"version": {},
}

// Args is a tokenized command line.
type Args struct {
	// Flags maps a flag name, as written, to its raw value.
	Flags map[string]string
	// Order lists flag names in order of first appearance.
	Order []string
	// Positional holds bare tokens and everything after "--".
	Positional []string
}

// ParseArgs tokenizes argv (without the program name). Flag names are open
// ended:
//
//	--key=value, -key=value  key: "value"
//	--key value              key: "value" (next token is not a flag)
//	--key                    key: "true"
//	--no-key                 key: "false"
//	--                       ends flag parsing
//
// Repeated flags keep the last value.
func ParseArgs(argv []string) Args {
	args := Args{Flags: make(map[string]string)}

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			args.Positional = append(args.Positional, argv[i+1:]...)
			break
		}

		name := strings.TrimLeft(token, "-")
		if name == token || name == "" {
			args.Positional = append(args.Positional, token)
			continue
		}

		var value string
		if k, v, ok := strings.Cut(name, "="); ok {
			name, value = k, v
		} else if strings.HasPrefix(name, "no-") && len(name) > len("no-") {
			name, value = strings.TrimPrefix(name, "no-"), "false"
		} else if i+1 < len(argv) && isValueToken(argv[i+1]) {
			value = argv[i+1]
			i++
		} else {
			value = "true"
		}

		if name == "" {
			continue
		}
		if _, reserved := reservedFlags[name]; reserved {
			continue
		}

		args.set(name, value)
	}

	return args
}

func (a *Args) set(name, value string) {
	if _, seen := a.Flags[name]; !seen {
		a.Order = append(a.Order, name)
	}
	a.Flags[name] = value
}

// selectors returns the flags keyed the way bootstrap variables are named:
// upper-cased with hyphens turned into underscores.
func (a Args) selectors() map[string]string {
	m := make(map[string]string, len(a.Flags))
	for _, name := range a.Order {
		key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		m[key] = a.Flags[name]
	}
	return m
}

// isValueToken reports whether token can be consumed as the value of the
// preceding flag. Negative numbers are values, not flags.
func isValueToken(token string) bool {
	if !strings.HasPrefix(token, "-") {
		return true
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}
