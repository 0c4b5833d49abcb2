// SPDX-License-Identifier: MIT

package tune

import (
	"errors"
	"fmt"
)

// ErrInvalidValue classifies rendering failures caused by a Value that is
// neither a size nor a literal. Use errors.Is(err, ErrInvalidValue) instead
// of string matching. Values built via Kilobytes or Literal never hit this.
var ErrInvalidValue = errors.New("invalid config value")

type valueKind int

const (
	kindInvalid valueKind = iota
	kindSize
	kindLiteral
)

// Value is a single configuration value: either a memory size in kilobytes,
// normalized to the largest whole unit when rendered, or an opaque literal
// emitted verbatim.
type Value struct {
	kind    valueKind
	kb      int64
	literal string
}

// Kilobytes returns a size Value measured in kilobytes.
func Kilobytes(kb int64) Value {
	return Value{kind: kindSize, kb: kb}
}

// Literal returns a Value rendered exactly as the given string.
func Literal(s string) Value {
	return Value{kind: kindLiteral, literal: s}
}

// Render formats the value for a postgresql.conf line. Sizes are expressed
// in the largest unit of GB, MB or kB that divides the amount evenly.
func (v Value) Render() (string, error) {
	switch v.kind {
	case kindSize:
		switch {
		case v.kb%gigabyte == 0:
			return fmt.Sprintf("%dGB", v.kb/gigabyte), nil
		case v.kb%megabyte == 0:
			return fmt.Sprintf("%dMB", v.kb/megabyte), nil
		default:
			return fmt.Sprintf("%dkB", v.kb), nil
		}
	case kindLiteral:
		return v.literal, nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrInvalidValue, v.kind)
	}
}

// Kilobytes reports the raw size and whether the value is a size at all.
func (v Value) Kilobytes() (int64, bool) {
	return v.kb, v.kind == kindSize
}
