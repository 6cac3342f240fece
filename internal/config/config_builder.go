// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Bootstrap
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Bootstrap, 0, 3),
	}
}

func (b *configBuilder) build() (*Bootstrap, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(Bootstrap)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.Secrets.Backend = strings.ToLower(strings.TrimSpace(config.Secrets.Backend))

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultBootstrap())
	return b
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	envCfg := &Bootstrap{}
	if err := parseEnv(envCfg, environMap(environ)); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withArgs(args Args) *configBuilder {
	flagCfg := &Bootstrap{}
	if err := parseEnv(flagCfg, args.selectors()); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting flag configs: %w", err))
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}
