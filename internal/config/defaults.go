package config

import (
	"time"
)

// Fixed fallback values applied when no other configuration source sets a
// field.
const (
	DefaultServerAddress  = "0.0.0.0:8080"
	DefaultRemoteTarget   = "http://localhost:8080"
	DefaultClientDBPath   = "scanledger.db"
	DefaultConfigPath     = "scanledger.json"
	DefaultDeviceName     = "scanledger-client"
	DefaultDebounceWindow = 2 * time.Second
	DefaultSyncInterval   = 1 * time.Minute
	DefaultRequestTimeout = 15 * time.Second
	DefaultTokenIssuer    = "scanledger"
	DefaultTokenDuration  = 720 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			// no DeviceID fallback: the client generates one on first
			// run and persists it, see ensureDeviceID
			DeviceName:     DefaultDeviceName,
			DebounceWindow: DefaultDebounceWindow,
		},
		Storage: Storage{
			ClientDB: ClientDB{Path: DefaultClientDBPath},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultRemoteTarget,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
	}
}
