// SPDX-License-Identifier: MIT

// Package config resolves the calculator's two inputs from the process
// environment: the PostgreSQL version and the container memory allotment.
package config

import (
	"fmt"
	"strconv"

	"github.com/aptible/pgtune/internal/log"
	"github.com/aptible/pgtune/internal/tune"
)

const (
	// EnvVersion names the required PostgreSQL version variable, e.g. "9.4" or "10".
	EnvVersion = "PG_VERSION"
	// EnvContainerSize names the optional container memory variable, in megabytes.
	EnvContainerSize = "APTIBLE_CONTAINER_SIZE"

	defaultContainerSizeMB = "1024"
)

// Settings are the resolved calculator inputs. RAMKB is the container
// allotment converted to kilobytes.
type Settings struct {
	Version tune.Version
	RAMKB   int64
}

// FromEnv resolves Settings through the given lookup function, usually
// os.LookupEnv. A missing version or a malformed version or size is an
// error: partial output would be worse than none.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	logger := log.WithComponent("config")

	raw, ok := lookup(EnvVersion)
	if !ok {
		return Settings{}, ErrVersionMissing
	}
	version, err := tune.ParseVersion(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", EnvVersion, err)
	}
	logger.Debug().
		Str("key", EnvVersion).
		Str("value", raw).
		Str("source", "environment").
		Msg("using environment variable")

	sizeRaw, ok := lookup(EnvContainerSize)
	source := "environment"
	if !ok || sizeRaw == "" {
		sizeRaw = defaultContainerSizeMB
		source = "default"
	}
	sizeMB, err := strconv.ParseInt(sizeRaw, 10, 64)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %q is not an integer", EnvContainerSize, sizeRaw)
	}
	if sizeMB < 0 {
		return Settings{}, fmt.Errorf("%s: %q is negative", EnvContainerSize, sizeRaw)
	}
	logger.Debug().
		Str("key", EnvContainerSize).
		Int64("value", sizeMB).
		Str("source", source).
		Msg("using container size in megabytes")

	return Settings{Version: version, RAMKB: sizeMB * 1024}, nil
}
