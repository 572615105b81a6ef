// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDeviceID_GeneratesAndPersists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	cfg := &StructuredConfig{JSONFilePath: p}
	require.NoError(t, cfg.ensureDeviceID())

	_, err := uuid.Parse(cfg.App.DeviceID)
	require.NoError(t, err, "generated id must be a uuid")

	// перезапуск: файл читается и возвращает тот же идентификатор
	reloaded, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, cfg.App.DeviceID, reloaded.App.DeviceID)
}

func TestEnsureDeviceID_StableAcrossRuns(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	first := &StructuredConfig{JSONFilePath: p}
	require.NoError(t, first.ensureDeviceID())

	reloaded, err := parseJSON(p)
	require.NoError(t, err)
	reloaded.JSONFilePath = p

	// второй запуск не генерирует новую идентичность
	require.NoError(t, reloaded.ensureDeviceID())
	assert.Equal(t, first.App.DeviceID, reloaded.App.DeviceID)
}

func TestEnsureDeviceID_ExistingIDUntouched(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	cfg := &StructuredConfig{
		App:          App{DeviceID: "dev-42"},
		JSONFilePath: p,
	}
	require.NoError(t, cfg.ensureDeviceID())

	assert.Equal(t, "dev-42", cfg.App.DeviceID)
	assert.NoFileExists(t, p, "a configured identity must not trigger a write")
}

func TestPersistDeviceID_KeepsOtherFields(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	seed := `{
		"app": { "device_name": "warehouse-gate", "debounce_window": "2s" },
		"adapter": { "http_address": "http://sync.example.com" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(seed), 0o600))

	require.NoError(t, persistDeviceID(p, "dev-42"))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, "dev-42", cfg.App.DeviceID)
	assert.Equal(t, "warehouse-gate", cfg.App.DeviceName)
	assert.Equal(t, "http://sync.example.com", cfg.Adapter.HTTPAddress)
}

func TestWithJSON_FallsBackToDefaultConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())
	seed := `{ "app": { "device_id": "dev-42" } }`
	require.NoError(t, os.WriteFile(DefaultConfigPath, []byte(seed), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	cfg, err := b.withJSON().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "dev-42", cfg.App.DeviceID)
}
