// SPDX-License-Identifier: MIT

package tune

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/renameio/v2"
)

// WriteConf renders the parameter set as postgresql.conf lines, one
// "key = value" per line, sorted by key.
func WriteConf(w io.Writer, params map[string]Value) error {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rendered, err := params[key].Render()
		if err != nil {
			return fmt.Errorf("render %s: %w", key, err)
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", key, rendered); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}
	return nil
}

// WriteConfFile writes the rendered parameter set to path atomically.
// renameio handles: temp file creation, fsync, atomic rename, cleanup on error.
func WriteConfFile(path string, params map[string]Value) error {
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending conf file: %w", err)
	}
	defer func() {
		// Cleanup is a no-op after a successful commit.
		_ = pendingFile.Cleanup()
	}()

	if err := WriteConf(pendingFile, params); err != nil {
		return err
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace conf file: %w", err)
	}
	return nil
}
