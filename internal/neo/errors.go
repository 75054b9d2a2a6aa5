// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package neo

import "errors"

var (
	// ErrMissingApproach means a feed record arrived without close-approach data.
	ErrMissingApproach = errors.New("feed record has no close approach")

	// ErrMissingOrbitalData means a lookup record arrived without orbital data.
	ErrMissingOrbitalData = errors.New("lookup record has no orbital data")

	// ErrUnknownUnit means the configured diameter unit is not published by NeoWs.
	ErrUnknownUnit = errors.New("unknown diameter unit")
)
