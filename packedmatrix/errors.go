// SPDX-License-Identifier: MIT
// Package packedmatrix: sentinel error set (unified, consistent).
// All algorithms MUST return these sentinels; tests MUST check them via
// errors.Is.

package packedmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a non-bipolar pattern entry was encountered
	// during a Hebbian fill.
	ErrInvalidValue = errors.New("packedmatrix: non-bipolar pattern entry")

	// ErrSizeMismatch indicates a declared order N disagrees with a
	// pattern's length or with the on-disk token count.
	ErrSizeMismatch = errors.New("packedmatrix: size mismatch")

	// ErrInvalidArgument indicates an index outside [1,N] or order N<0.
	ErrInvalidArgument = errors.New("packedmatrix: invalid argument")
)

// packedErrorf wraps err with an operation tag, preserving errors.Is.
func packedErrorf(op string, err error) error {
	return fmt.Errorf("packedmatrix.%s: %w", op, err)
}
