// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to set a field wins; later sources fill the gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Fixed defaults
//
// The main entry points are [GetStructuredConfig] for the reconciliation
// server and [GetClientConfig] for the scan client.
package config
