// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The global logger configures once per process, so a single test exercises
// Configure, the once guard and WithComponent together.
func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "pgtune-test", Version: "v0.0.0-test"})

	// A second Configure must not rebind the output.
	var other bytes.Buffer
	Configure(Config{Output: &other, Service: "other"})

	logger := WithComponent("config")
	logger.Info().Str("key", "PG_VERSION").Msg("using environment variable")

	assert.Empty(t, other.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pgtune-test", entry["service"])
	assert.Equal(t, "v0.0.0-test", entry["version"])
	assert.Equal(t, "config", entry["component"])
	assert.Equal(t, "PG_VERSION", entry["key"])
	assert.Equal(t, "using environment variable", entry["message"])
}
