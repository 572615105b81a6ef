package config

import (
	"fmt"
	"time"
)

// ClientApp holds scan-session settings derived from the shared structured
// config.
type ClientApp struct {
	// DeviceID is the stable identifier this client presents to the server.
	DeviceID string
	// DeviceName is a human-readable device label.
	DeviceName string
	// DeviceSecret authenticates the device against the server.
	DeviceSecret string
	// ScannerDevice is the device node path the barcode scanner emits
	// decoded lines on. Empty disables live capture.
	ScannerDevice string
	// AutoSync enables the background sync worker.
	AutoSync bool
	// DebounceWindow is the suppression window for repeated scans.
	DebounceWindow time.Duration
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote sync target base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDBView contains local database settings for the client.
type ClientDBView struct {
	// Path is the SQLite database file path used by the client.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDBView
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the auto-sync worker should run.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains scan-session and device-identity settings.
	App ClientApp
	// Adapter contains the remote target address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], generates and persists
// a device identity on first run, maps only the fields relevant to the
// client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if err := cfg.ensureDeviceID(); err != nil {
		return nil, fmt.Errorf("error ensuring device identity: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceID:       cfg.App.DeviceID,
			DeviceName:     cfg.App.DeviceName,
			DeviceSecret:   cfg.App.DeviceSecret,
			ScannerDevice:  cfg.App.ScannerDevice,
			AutoSync:       cfg.App.AutoSync,
			DebounceWindow: cfg.App.DebounceWindow,
			Version:        cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDBView{
				Path: cfg.Storage.ClientDB.Path,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
