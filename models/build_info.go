// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// version output for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are normalized to "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// Version returns the build version string.
func (b AppBuildInfo) Version() string { return b.buildVersion }

// Date returns the build date string.
func (b AppBuildInfo) Date() string { return b.buildDate }

// Commit returns the VCS commit string.
func (b AppBuildInfo) Commit() string { return b.buildCommit }
