// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Args
	}{
		{
			name: "empty",
			argv: nil,
			want: Args{Flags: map[string]string{}},
		},
		{
			name: "equals form",
			argv: []string{"--osseus_app_name=svc", "-ENV=dev"},
			want: Args{
				Flags: map[string]string{"osseus_app_name": "svc", "ENV": "dev"},
				Order: []string{"osseus_app_name", "ENV"},
			},
		},
		{
			name: "separate value",
			argv: []string{"--cfg_timeout", "30", "--port", "-1"},
			want: Args{
				Flags: map[string]string{"cfg_timeout": "30", "port": "-1"},
				Order: []string{"cfg_timeout", "port"},
			},
		},
		{
			name: "boolean and negation",
			argv: []string{"--verbose", "--no-color", "--debug"},
			want: Args{
				Flags: map[string]string{"verbose": "true", "color": "false", "debug": "true"},
				Order: []string{"verbose", "color", "debug"},
			},
		},
		{
			name: "positional and terminator",
			argv: []string{"serve", "--a=1", "--", "--b=2", "x"},
			want: Args{
				Flags:      map[string]string{"a": "1"},
				Order:      []string{"a"},
				Positional: []string{"serve", "--b=2", "x"},
			},
		},
		{
			name: "pseudo keys are dropped",
			argv: []string{"--help", "--version", "--_=x", "--$0=prog", "--keep=1"},
			want: Args{
				Flags: map[string]string{"keep": "1"},
				Order: []string{"keep"},
			},
		},
		{
			name: "last value wins",
			argv: []string{"--a=1", "--b=2", "--a=3"},
			want: Args{
				Flags: map[string]string{"a": "3", "b": "2"},
				Order: []string{"a", "b"},
			},
		},
		{
			name: "empty value",
			argv: []string{"--a="},
			want: Args{
				Flags: map[string]string{"a": ""},
				Order: []string{"a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseArgs(tt.argv))
		})
	}
}

func TestArgs_Selectors(t *testing.T) {
	args := ParseArgs([]string{"--env=dev", "--skip-secrets", "--Application_Name=svc"})

	assert.Equal(t, map[string]string{
		"ENV":              "dev",
		"SKIP_SECRETS":     "true",
		"APPLICATION_NAME": "svc",
	}, args.selectors())
}
