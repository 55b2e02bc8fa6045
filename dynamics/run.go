package dynamics

import "github.com/katalvlaran/hopfield/packedmatrix"

// StepObserver is called once per synchronous update, after the step has
// been applied, with the new state, the 1-based iteration counter, and its
// energy. It is purely observational: dynamics never branches on its
// return value, and a nil observer is always valid.
type StepObserver func(state []int8, iteration int, energy float64)

// Result reports how RunToFixedPoint terminated.
type Result struct {
	FinalState  []int8
	Iterations  int
	Converged   bool // true iff a true fixed point (s'==s) was reached
	Oscillating bool // true iff a period-2 limit cycle was detected instead
}

// RunToFixedPoint iterates Step from initial until convergence (Step
// reports changed==false) or a period-2 cycle is detected: the new state
// equals the state two steps prior (and not the immediately prior state).
// Per the reference's failure semantics, this guard is not optional — a
// synchronous, symmetric, zero-diagonal Hopfield network can legitimately
// oscillate with period 2, and convergence must be detected by state
// equality, never by an energy plateau or an undocumented iteration cap.
func RunToFixedPoint(w *packedmatrix.PackedSymMatrix, initial []int8, observe StepObserver) (*Result, error) {
	current := make([]int8, len(initial))
	copy(current, initial)

	// twoAgo is the state exactly two synchronous steps behind `next` once
	// warmed up: at the iteration that produces `next` from `current`,
	// twoAgo still holds the value `current` had the iteration before last
	// — i.e. the state immediately preceding `current`, captured before
	// `current` is overwritten below. That is exactly the comparison a
	// period-2 cycle needs: next == state-two-steps-back.
	var twoAgo []int8
	iterations := 0

	for {
		next, changed, err := Step(w, current)
		if err != nil {
			return nil, err
		}
		iterations++

		if observe != nil {
			e, eerr := Energy(w, next)
			if eerr != nil {
				return nil, eerr
			}
			observe(next, iterations, e)
		}

		if !changed {
			return &Result{FinalState: next, Iterations: iterations, Converged: true}, nil
		}

		if twoAgo != nil && equalState(next, twoAgo) {
			return &Result{FinalState: next, Iterations: iterations, Oscillating: true}, nil
		}

		twoAgo = current
		current = next
	}
}

func equalState(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
