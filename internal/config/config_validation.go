// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Role-specific validation lives on the
// derived views ([ClientConfig.validate], [GetServerConfig]).
func (cfg *StructuredConfig) validate() error {
	if cfg.App.DebounceWindow < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.DeviceID == "" || cfg.App.DebounceWindow <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AutoSync && cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
