// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrVersionMissing classifies a missing PG_VERSION environment variable.
	// Use errors.Is(err, ErrVersionMissing) instead of string matching.
	ErrVersionMissing = errors.New("PG_VERSION not set")
)
