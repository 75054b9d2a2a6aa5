// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

// Package testinfra provides shared test infrastructure: canned NeoWs payloads
// and an httptest server that serves them. It is imported only from _test.go
// files.
package testinfra
