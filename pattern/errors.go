// SPDX-License-Identifier: MIT
// Package pattern: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// pattern package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is.

package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a value outside {-1,+1} was appended, read
	// from disk, or discovered mid-operation.
	ErrInvalidValue = errors.New("pattern: value must be -1 or +1")

	// ErrSizeMismatch indicates a declared size N disagrees with the
	// in-memory length or the on-disk token count.
	ErrSizeMismatch = errors.New("pattern: size mismatch")

	// ErrInvalidArgument indicates a probability outside [0,1], a cut
	// rectangle outside [1,W]x[1,H], or from>to on either axis.
	ErrInvalidArgument = errors.New("pattern: invalid argument")
)

// patternErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is keeps matching at call sites.
func patternErrorf(op string, err error) error {
	return fmt.Errorf("pattern.%s: %w", op, err)
}
