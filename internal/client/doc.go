// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package client implements the interactive scan client runtime.
//
// It wires the terminal UI, client services, local storage and background
// synchronization into a single process lifecycle.
package client
