// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/source"
	"github.com/MKhiriev/osseus-config/models"
)

var envFileExtensions = []string{"", ".json", ".yaml", ".yml"}

// FileConfigStore loads the per-environment configuration file from a
// directory.
type FileConfigStore struct {
	dir    string
	logger *logger.Logger
}

func NewFileConfigStore(dir string, log *logger.Logger) *FileConfigStore {
	return &FileConfigStore{dir: dir, logger: log}
}

// Load reads the file named after env and runs its top-level mapping
// through the source parser. The first existing regular file among
// <env>, <lower env> with extensions "", .json, .yaml and .yml is used.
//
// Returns [ErrConfigFileNotFound] when there is no candidate and
// [ErrConfigFileUnreadable] when the file cannot be read or its top level
// is not a mapping.
func (s *FileConfigStore) Load(ctx context.Context, env string) (models.Map, error) {
	log := logger.FromContext(ctx)

	path, err := s.find(env)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileUnreadable, path, err)
	}

	doc, err := decodeMapping(path, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileUnreadable, path, err)
	}

	log.Debug().Str("path", path).Int("keys", len(doc)).Msg("environment file loaded")

	return source.ParseMap(doc), nil
}

func (s *FileConfigStore) find(env string) (string, error) {
	if strings.TrimSpace(env) == "" {
		return "", fmt.Errorf("%w: empty environment name", ErrConfigFileNotFound)
	}

	names := []string{env}
	if lower := strings.ToLower(env); lower != env {
		names = append(names, lower)
	}

	for _, name := range names {
		for _, ext := range envFileExtensions {
			path := filepath.Join(s.dir, name+ext)

			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return "", fmt.Errorf("%w: %s: %w", ErrConfigFileUnreadable, path, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}

			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s in %s", ErrConfigFileNotFound, env, s.dir)
}

func decodeMapping(path string, raw []byte) (map[string]any, error) {
	var doc any

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}

	m, ok := stringKeys(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level is %T, want a mapping", doc)
	}

	return m, nil
}

// stringKeys rewrites YAML mappings with non-string keys (decoded as
// map[any]any) into map[string]any at every depth, so the result stays
// JSON-encodable.
func stringKeys(v any) any {
	switch value := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[fmt.Sprint(k)] = stringKeys(inner)
		}
		return out
	case map[string]any:
		for k, inner := range value {
			value[k] = stringKeys(inner)
		}
		return value
	case []any:
		for i, inner := range value {
			value[i] = stringKeys(inner)
		}
		return value
	default:
		return v
	}
}
