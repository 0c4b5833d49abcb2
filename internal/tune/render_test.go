// SPDX-License-Identifier: MIT

package tune

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfSorted(t *testing.T) {
	params := map[string]Value{
		"work_mem":                     Kilobytes(5242),
		"shared_buffers":               Kilobytes(262144),
		"checkpoint_completion_target": Literal("0.7"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConf(&buf, params))

	want := "checkpoint_completion_target = 0.7\n" +
		"shared_buffers = 256MB\n" +
		"work_mem = 5242kB\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteConfInvalidValue(t *testing.T) {
	var buf bytes.Buffer
	err := WriteConf(&buf, map[string]Value{"broken": {}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestWriteConfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postgresql.conf")
	params := Recommend(Version{10}, 4*1048576)

	require.NoError(t, WriteConfFile(path, params))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteConf(&buf, params))
	assert.Equal(t, buf.String(), string(data))
}

func TestWriteConfFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postgresql.conf")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o600))

	params := Recommend(Version{9, 4}, 1048576)
	require.NoError(t, WriteConfFile(path, params))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "checkpoint_segments = 32\n")
}
