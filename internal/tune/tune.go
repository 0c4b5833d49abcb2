// SPDX-License-Identifier: MIT

// Package tune derives PostgreSQL memory-sizing parameters from the engine
// version and the memory allotted to the container, following the published
// pgtune heuristics (fractions of RAM, per-connection budgets, version-gated
// WAL parameters).
package tune

const (
	kilobyte int64 = 1
	megabyte       = 1024 * kilobyte
	gigabyte       = 1024 * megabyte

	// maxConnections is the assumed concurrent client count used to split
	// the work_mem budget. Fixed: the calculator takes no workload input.
	maxConnections = 50

	maintenanceWorkMemCap = 2 * gigabyte
	walBuffersCap         = 16 * megabyte
)

// walRevampVersion is the release that replaced checkpoint_segments with
// min_wal_size/max_wal_size.
var walRevampVersion = Version{9, 5}

// Recommend computes the tuned parameter set for the given engine version
// and total memory in kilobytes. It is pure and deterministic; callers may
// invoke it concurrently.
//
// The division order inside each formula is load-bearing: truncation points
// must match the reference outputs bit-for-bit, so the expressions below
// must not be algebraically rearranged.
func Recommend(v Version, ramKB int64) map[string]Value {
	params := map[string]Value{
		"shared_buffers":               Kilobytes(ramKB / 4),
		"effective_cache_size":         Kilobytes(ramKB * 3 / 4),
		"maintenance_work_mem":         Kilobytes(minKB(ramKB/16, maintenanceWorkMemCap)),
		"work_mem":                     Kilobytes(ramKB * 3 / 4 / (maxConnections * 3)),
		"wal_buffers":                  Kilobytes(minKB(ramKB*3/4/100, walBuffersCap)),
		"checkpoint_completion_target": Literal("0.7"),
		"default_statistics_target":    Literal("100"),
	}

	if v.Before(walRevampVersion) {
		params["checkpoint_segments"] = Literal("32")
	} else {
		params["min_wal_size"] = Kilobytes(1 * gigabyte)
		params["max_wal_size"] = Kilobytes(2 * gigabyte)
	}

	return params
}

func minKB(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
