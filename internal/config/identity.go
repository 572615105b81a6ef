// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ensureDeviceID fills App.DeviceID with a freshly generated identifier when
// no configuration source has set one, and writes the identifier back into
// the JSON config file. The server keys snapshots by device_id, so a client
// that reintroduced itself under a new ID on every launch would orphan its
// own server-side state.
func (cfg *StructuredConfig) ensureDeviceID() error {
	if cfg.App.DeviceID != "" {
		return nil
	}

	path := cfg.JSONFilePath
	if path == "" {
		path = DefaultConfigPath
	}

	deviceID := uuid.NewString()
	if err := persistDeviceID(path, deviceID); err != nil {
		return fmt.Errorf("error persisting generated device id: %w", err)
	}

	cfg.App.DeviceID = deviceID
	return nil
}

// persistDeviceID rewrites the JSON config file with device_id set, keeping
// every other field the file already carries. A missing file is created.
func persistDeviceID(path string, deviceID string) error {
	var jsonCfg StructuredJSONConfig

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &jsonCfg); err != nil {
			return fmt.Errorf("error decoding json configs: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("error reading a json file: %w", err)
	}

	jsonCfg.App.DeviceID = deviceID

	out, err := json.MarshalIndent(jsonCfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json configs: %w", err)
	}

	if err := os.WriteFile(path, append(out, '\n'), 0o600); err != nil {
		return fmt.Errorf("error writing a json file: %w", err)
	}

	return nil
}
