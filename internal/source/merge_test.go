// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/osseus-config/models"
)

func TestMerge_LaterLayerWins(t *testing.T) {
	env := models.Map{"timeout": float64(10), "region": "eu"}
	cli := models.Map{"timeout": float64(30)}

	got, err := Merge(env, cli)
	require.NoError(t, err)

	assert.Equal(t, models.Map{"timeout": float64(30), "region": "eu"}, got)
}

func TestMerge_DeepMergesGroups(t *testing.T) {
	file := models.Map{"osseus_db": map[string]any{"host": "file-host", "port": float64(5432)}}
	secrets := models.Map{"osseus_db": map[string]any{"password": "s3cret"}}
	cli := models.Map{"osseus_db": map[string]any{"host": "cli-host"}}

	got, err := Merge(file, secrets, cli)
	require.NoError(t, err)

	assert.Equal(t, models.Map{
		"osseus_db": map[string]any{
			"host":     "cli-host",
			"port":     float64(5432),
			"password": "s3cret",
		},
	}, got)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	first := models.Map{"osseus_db": map[string]any{"host": "a"}}
	second := models.Map{"osseus_db": map[string]any{"port": float64(1)}}

	_, err := Merge(first, second)
	require.NoError(t, err)

	assert.Equal(t, models.Map{"osseus_db": map[string]any{"host": "a"}}, first)
	assert.Equal(t, models.Map{"osseus_db": map[string]any{"port": float64(1)}}, second)
}

func TestMerge_SkipsEmptyLayers(t *testing.T) {
	got, err := Merge(nil, models.Map{}, models.Map{"a": "b"}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Map{"a": "b"}, got)
}

func TestMerge_NoLayers(t *testing.T) {
	got, err := Merge()
	require.NoError(t, err)
	assert.Empty(t, got)
}
