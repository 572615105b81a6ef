package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (server snapshot store)
//	-c/-config json file path with configs
//	-remote remote sync target base URL (client)
//	-client-db local ledger database path (client)
//	-device-id stable device identifier
//	-device-name human-readable device label
//	-device-secret device authentication secret
//	-scanner-device scanner device node path (e.g., "/dev/ttyACM0")
//	-auto-sync enable background sync
//	-debounce-window scan suppression window (e.g., "2s")
//	-sync-interval auto-sync period (e.g., "1m")
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var remoteTarget string
	var clientDBPath string
	var deviceID string
	var deviceName string
	var deviceSecret string
	var scannerDevice string
	var autoSync bool
	var debounceWindow time.Duration
	var syncInterval time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&remoteTarget, "remote", "", "Remote sync target base URL")
	flag.StringVar(&clientDBPath, "client-db", "", "Local ledger database path")
	flag.StringVar(&deviceID, "device-id", "", "Stable device identifier")
	flag.StringVar(&deviceName, "device-name", "", "Human-readable device label")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device authentication secret")
	flag.StringVar(&scannerDevice, "scanner-device", "", "Scanner device node path")
	flag.BoolVar(&autoSync, "auto-sync", false, "Enable background sync")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Scan suppression window (e.g., 2s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync period (e.g., 1m)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceID:       deviceID,
			DeviceName:     deviceName,
			DeviceSecret:   deviceSecret,
			ScannerDevice:  scannerDevice,
			AutoSync:       autoSync,
			DebounceWindow: debounceWindow,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			ClientDB: ClientDB{Path: clientDBPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteTarget,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
