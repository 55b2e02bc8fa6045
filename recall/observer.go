package recall

import "github.com/katalvlaran/hopfield/internal/convview"

// LiveObserver returns a dynamics.StepObserver that reports each step as a
// convview.Update on updates (closing it once RunToFixedPoint returns is
// the caller's responsibility — see cmd/recall). Hamming distance is
// computed against the loaded reference pattern; -1 if none is loaded.
func (s *Session) LiveObserver(updates chan<- convview.Update) func(state []int8, iteration int, energy float64) {
	return func(st []int8, iteration int, energy float64) {
		hamming := -1
		if s.reference != nil {
			dist := 0
			for i, v := range st {
				if int(v) != int(s.reference.Data()[i]) {
					dist++
				}
			}
			hamming = dist
		}
		updates <- convview.Update{Iteration: iteration, Energy: energy, Hamming: hamming}
	}
}
