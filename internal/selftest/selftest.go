// SPDX-License-Identifier: MIT

// Package selftest checks the calculator against known-good reference
// outputs. It backs the CLI --test flag and doubles as a smoke test for
// packaged builds, where `go test` is unavailable.
package selftest

import (
	"fmt"

	"github.com/aptible/pgtune/internal/tune"
	"github.com/google/go-cmp/cmp"
)

// Fixture pairs calculator inputs with the exact rendered output expected
// for them.
type Fixture struct {
	Version         string
	ContainerSizeMB int64
	Want            map[string]string
}

// fixtures covers both sides of the 9.5 WAL parameter split plus the
// threshold release itself.
var fixtures = []Fixture{
	{
		Version:         "9.4",
		ContainerSizeMB: 1024,
		Want: map[string]string{
			"checkpoint_completion_target": "0.7",
			"checkpoint_segments":          "32",
			"default_statistics_target":    "100",
			"effective_cache_size":         "768MB",
			"maintenance_work_mem":         "64MB",
			"shared_buffers":               "256MB",
			"wal_buffers":                  "7864kB",
			"work_mem":                     "5242kB",
		},
	},
	{
		Version:         "9.5",
		ContainerSizeMB: 2048,
		Want: map[string]string{
			"checkpoint_completion_target": "0.7",
			"default_statistics_target":    "100",
			"effective_cache_size":         "1536MB",
			"maintenance_work_mem":         "128MB",
			"max_wal_size":                 "2GB",
			"min_wal_size":                 "1GB",
			"shared_buffers":               "512MB",
			"wal_buffers":                  "15728kB",
			"work_mem":                     "10485kB",
		},
	},
	{
		Version:         "10",
		ContainerSizeMB: 4096,
		Want: map[string]string{
			"checkpoint_completion_target": "0.7",
			"default_statistics_target":    "100",
			"effective_cache_size":         "3GB",
			"maintenance_work_mem":         "256MB",
			"max_wal_size":                 "2GB",
			"min_wal_size":                 "1GB",
			"shared_buffers":               "1GB",
			"wal_buffers":                  "16MB",
			"work_mem":                     "20971kB",
		},
	},
}

// Run feeds the built-in fixtures through the calculator and fails on the
// first divergence from the expected output.
func Run() error {
	return run(fixtures)
}

func run(fixtures []Fixture) error {
	for _, f := range fixtures {
		version, err := tune.ParseVersion(f.Version)
		if err != nil {
			return fmt.Errorf("fixture %s/%dMB: %w", f.Version, f.ContainerSizeMB, err)
		}

		params := tune.Recommend(version, f.ContainerSizeMB*1024)
		got := make(map[string]string, len(params))
		for key, value := range params {
			rendered, err := value.Render()
			if err != nil {
				return fmt.Errorf("fixture %s/%dMB: render %s: %w", f.Version, f.ContainerSizeMB, key, err)
			}
			got[key] = rendered
		}

		for key, want := range f.Want {
			rendered, ok := got[key]
			if !ok {
				return mismatch(f, key, "<missing>", want, got)
			}
			if rendered != want {
				return mismatch(f, key, rendered, want, got)
			}
		}
		for key := range got {
			if _, ok := f.Want[key]; !ok {
				return mismatch(f, key, got[key], "<absent>", got)
			}
		}
	}
	return nil
}

func mismatch(f Fixture, key, got, want string, full map[string]string) error {
	return fmt.Errorf("fixture %s/%dMB: %s = %q, want %q\n%s",
		f.Version, f.ContainerSizeMB, key, got, want, cmp.Diff(f.Want, full))
}
