// Package dynamics implements the pure functions of synchronous Hopfield
// recall: the local field, the sign update rule, the energy function, one
// synchronous step, and iteration to a fixed point (or a detected period-2
// limit cycle). None of these functions read or write any file; they
// operate entirely over an in-memory state vector and a
// packedmatrix.PackedSymMatrix.
package dynamics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopfield/packedmatrix"
)

// ErrSizeMismatch indicates the state vector's length disagrees with the
// matrix order N. Invalid sizes between state and matrix are fatal.
var ErrSizeMismatch = errors.New("dynamics: state length does not match matrix order")

func dynErrorf(op string, err error) error {
	return fmt.Errorf("dynamics.%s: %w", op, err)
}

// Sign implements sign(x) = +1 if x>=0, else -1. Note the convention
// sign(0)=+1: this is a design decision the reference test fixtures rely on.
func Sign(x float64) int8 {
	if x >= 0 {
		return 1
	}

	return -1
}

// LocalField computes h_i(s) = sum_{j=1..N} W[i,j]*s[j] for 1-based neuron
// i. W[i,i]=0 by construction so the self-term is always inert, but
// LocalField still goes through At(i,j) for every j, including j==i, so two
// independent call sites (here and any packed-offset-based caller) are
// guaranteed to agree (spec testable property).
func LocalField(w *packedmatrix.PackedSymMatrix, state []int8, i int) (float64, error) {
	if len(state) != w.Order() {
		return 0, dynErrorf("LocalField", ErrSizeMismatch)
	}

	var h float64
	for j := 1; j <= w.Order(); j++ {
		wij, err := w.At(i, j)
		if err != nil {
			return 0, dynErrorf("LocalField", err)
		}
		h += wij * float64(state[j-1])
	}

	return h, nil
}

// Energy computes E(s) = -(1/2) * sum_i s[i]*h_i(s), the Hopfield energy of
// state under w.
func Energy(w *packedmatrix.PackedSymMatrix, state []int8) (float64, error) {
	if len(state) != w.Order() {
		return 0, dynErrorf("Energy", ErrSizeMismatch)
	}

	var acc float64
	for i := 1; i <= w.Order(); i++ {
		h, err := LocalField(w, state, i)
		if err != nil {
			return 0, dynErrorf("Energy", err)
		}
		acc += float64(state[i-1]) * h
	}

	return -0.5 * acc, nil
}

// Step produces a fresh vector s' with s'[i]=Sign(h_i(s)) for every i, read
// entirely from the state captured before the step begins — no in-place
// update, so the caller's slice is never mutated. changed reports whether
// s' differs from s (i.e. "not yet converged").
func Step(w *packedmatrix.PackedSymMatrix, state []int8) (next []int8, changed bool, err error) {
	if len(state) != w.Order() {
		return nil, false, dynErrorf("Step", ErrSizeMismatch)
	}

	next = make([]int8, len(state))
	for i := 1; i <= w.Order(); i++ {
		h, err := LocalField(w, state, i)
		if err != nil {
			return nil, false, dynErrorf("Step", err)
		}
		next[i-1] = Sign(h)
		if next[i-1] != state[i-1] {
			changed = true
		}
	}

	return next, changed, nil
}
