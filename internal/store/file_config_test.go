// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestFileConfigStore_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dev.json", `{"osseus_app_name":"svc","cfg_port":"8080","Debug":"true"}`)

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "DEV")
	require.NoError(t, err)

	assert.Equal(t, models.Map{
		"osseus_app": map[string]any{"name": "svc"},
		"port":       float64(8080),
		"debug":      true,
	}, got)
}

func TestFileConfigStore_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prod.yaml", "osseus_db_host: db.internal\nosseus_db_port: 5432\nregion: EU\n")

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "prod")
	require.NoError(t, err)

	assert.Equal(t, models.Map{
		"osseus_db": map[string]any{"host": "db.internal", "port": 5432},
		"region":    "eu",
	}, got)
}

func TestFileConfigStore_YAMLNonStringKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dev.yaml", "osseus_db_ports:\n  1: a\n  2: b\nreplicas:\n  - 10: x\n")

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "dev")
	require.NoError(t, err)

	assert.Equal(t, models.Map{
		"osseus_db": map[string]any{"ports": map[string]any{"1": "a", "2": "b"}},
		"replicas":  []any{map[string]any{"10": "x"}},
	}, got)

	_, err = json.Marshal(got)
	assert.NoError(t, err)
}

func TestFileConfigStore_ExtensionlessFileWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "qa", `{"source":"bare"}`)
	writeFile(t, dir, "qa.json", `{"source":"json"}`)

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "qa")
	require.NoError(t, err)
	assert.Equal(t, "bare", got["source"])
}

func TestFileConfigStore_ExactCaseBeforeLowerCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Stage.yml", "source: exact\n")

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "Stage")
	require.NoError(t, err)
	assert.Equal(t, "exact", got["source"])
}

func TestFileConfigStore_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dev"), 0o755))
	writeFile(t, dir, "dev.yml", "a: 1\n")

	got, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, models.Map{"a": 1}, got)
}

func TestFileConfigStore_NotFound(t *testing.T) {
	_, err := NewFileConfigStore(t.TempDir(), logger.Nop()).Load(context.Background(), "dev")
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestFileConfigStore_EmptyEnv(t *testing.T) {
	_, err := NewFileConfigStore(t.TempDir(), logger.Nop()).Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestFileConfigStore_Unreadable(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "dev.json", `{"a":`},
		{"json array", "dev.json", `[1,2]`},
		{"yaml scalar", "dev.yaml", "just a string\n"},
		{"malformed yaml", "dev.yaml", "a: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := NewFileConfigStore(dir, logger.Nop()).Load(context.Background(), "dev")
			assert.ErrorIs(t, err, ErrConfigFileUnreadable)
		})
	}
}
