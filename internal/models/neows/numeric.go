// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package neows

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrMalformedNumber is returned when an upstream numeric string cannot be parsed.
var ErrMalformedNumber = errors.New("malformed numeric value")

// ParseNumeric parses a decimal string received from NeoWs.
// Surrounding whitespace, empty strings, NaN and infinities are rejected.
func ParseNumeric(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformedNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrMalformedNumber, s)
	}
	return v, nil
}

// Numeric is a float64 that NeoWs transmits as a JSON string ("65260.5699103704").
// Bare JSON numbers are accepted as well.
type Numeric float64

// Float64 returns the value as a float64.
func (n Numeric) Float64() float64 {
	return float64(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrMalformedNumber)
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedNumber, err)
		}
	}

	v, err := ParseNumeric(raw)
	if err != nil {
		return err
	}
	*n = Numeric(v)
	return nil
}
