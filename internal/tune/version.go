// SPDX-License-Identifier: MIT

package tune

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a PostgreSQL release number as an ordered tuple of
// non-negative integers, e.g. {9, 4} or {10}.
type Version []int

// ParseVersion parses a dot-separated version string such as "9.5" or "10".
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("parse version: empty string")
	}
	parts := strings.Split(s, ".")
	v := make(Version, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse version %q: component %q is not an integer", s, part)
		}
		if n < 0 {
			return nil, fmt.Errorf("parse version %q: component %q is negative", s, part)
		}
		v = append(v, n)
	}
	return v, nil
}

// Before reports whether v sorts strictly before other, comparing
// element-wise with missing components treated as zero.
func (v Version) Before(other Version) bool {
	n := len(v)
	if len(other) > n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v) {
			a = v[i]
		}
		if i < len(other) {
			b = other[i]
		}
		if a != b {
			return a < b
		}
	}
	return false
}

// String renders the version back to its dot-separated form.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
