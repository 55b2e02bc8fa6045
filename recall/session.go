// Package recall loads a trained weight matrix and a chosen reference
// pattern, builds corrupted queries (noise and rectangular occlusion),
// and runs synchronous sign dynamics to a fixed point, reporting the
// resulting state. Its session type realizes the state machine of spec
// §4.5: Idle → Loaded → Queried → Iterating → Converged → (save/clear) →
// Loaded.
package recall

import (
	"math/rand"
	"path/filepath"
	"time"

	"github.com/katalvlaran/hopfield/dynamics"
	"github.com/katalvlaran/hopfield/imaging"
	"github.com/katalvlaran/hopfield/internal/fsio"
	"github.com/katalvlaran/hopfield/internal/runlog"
	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
)

// state is the session's position in the Idle→Converged state machine.
type state int

const (
	stateIdle state = iota
	stateLoaded
	stateQueried
	stateIterating
	stateConverged
)

// CorruptionKind selects which corrupted copy SetInitialState loads from.
type CorruptionKind int

const (
	// Noisy selects the add_noise(p,N) corrupted copy.
	Noisy CorruptionKind = iota
	// Cut selects the rectangular-occlusion corrupted copy.
	Cut
)

// Session owns one weight matrix and one DynamicsState (spec §3
// Ownership). It borrows pattern files read-only from baseDir/patterns and
// writes corrupted queries under baseDir/corrupted_files.
type Session struct {
	baseDir string
	n       int
	cfg     config

	weight *packedmatrix.PackedSymMatrix
	st     state

	reference *pattern.Pattern
	noisy     *pattern.Pattern
	cutP      *pattern.Pattern

	current    []int8
	iteration  int
	lastResult *dynamics.Result
	refName    string
}

// NewSession returns an idle Session of order n rooted at baseDir.
func NewSession(baseDir string, n int, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{baseDir: baseDir, n: n, cfg: cfg, st: stateIdle}
}

// LoadWeightMatrix constructs a PackedSymMatrix of order n and populates it
// from baseDir/weight_matrix/weight_matrix.txt. The weight-matrix
// directory, when read, must contain only weight_matrix.txt.
func (s *Session) LoadWeightMatrix() error {
	weightDir := filepath.Join(s.baseDir, "weight_matrix")
	others, err := fsio.RegularFilesOtherThan(weightDir, map[string]bool{"weight_matrix.txt": true})
	if err != nil {
		return recallErrorf("LoadWeightMatrix", err)
	}
	if len(others) > 0 {
		return recallErrorf("LoadWeightMatrix", ErrInvalidState)
	}

	w, err := packedmatrix.Load(filepath.Join(weightDir, "weight_matrix.txt"), s.n)
	if err != nil {
		return recallErrorf("LoadWeightMatrix", err)
	}

	s.weight = w
	s.st = stateLoaded

	return nil
}

// CorruptPattern loads the reference pattern `name` (size n) from
// baseDir/patterns, builds a noisy copy via AddNoise(p_noise,N) and a cut
// copy via Cut(-1,...) over the configured rectangle, persists both under
// corrupted_files/<name>.noise.txt and <name>.cut.txt, and renders rasters.
// rng, if nil, is seeded from the current time (non-deterministic by
// default; callers that need reproducibility pass a seeded *rand.Rand).
func (s *Session) CorruptPattern(name string, rng *rand.Rand) error {
	if s.st != stateLoaded {
		return recallErrorf("CorruptPattern", ErrInvalidState)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	patternsDir := filepath.Join(s.baseDir, "patterns")
	ref, err := pattern.Load(patternsDir, name, s.n)
	if err != nil {
		return recallErrorf("CorruptPattern", err)
	}

	corruptedDir := filepath.Join(s.baseDir, "corrupted_files")
	if err := fsio.EnsureClearDir(corruptedDir); err != nil {
		return recallErrorf("CorruptPattern", err)
	}

	noisy := ref.Clone()
	if err := noisy.AddNoise(s.cfg.noiseProbability, s.n, rng); err != nil {
		return recallErrorf("CorruptPattern", err)
	}

	cutP := ref.Clone()
	if err := cutP.Cut(-1, s.cfg.cutFromRow, s.cfg.cutToRow, s.cfg.cutFromCol, s.cfg.cutToCol, s.cfg.width, s.cfg.height); err != nil {
		return recallErrorf("CorruptPattern", err)
	}

	if err := noisy.Save(corruptedDir, name+".noise", s.n); err != nil {
		return recallErrorf("CorruptPattern", err)
	}
	if err := cutP.Save(corruptedDir, name+".cut", s.n); err != nil {
		return recallErrorf("CorruptPattern", err)
	}
	if err := imaging.ToRaster(noisy, corruptedDir, name+".noise", s.cfg.width, s.cfg.height); err != nil {
		return recallErrorf("CorruptPattern", err)
	}
	if err := imaging.ToRaster(cutP, corruptedDir, name+".cut", s.cfg.width, s.cfg.height); err != nil {
		return recallErrorf("CorruptPattern", err)
	}

	s.reference = ref
	s.noisy = noisy
	s.cutP = cutP
	s.refName = name
	s.st = stateQueried

	return nil
}

// SetInitialState copies the chosen corrupted pattern into the current
// state and resets the iteration counter to 0.
func (s *Session) SetInitialState(which CorruptionKind) error {
	if s.st != stateQueried && s.st != stateConverged {
		return recallErrorf("SetInitialState", ErrInvalidState)
	}

	var src *pattern.Pattern
	switch which {
	case Noisy:
		src = s.noisy
	case Cut:
		src = s.cutP
	default:
		return recallErrorf("SetInitialState", ErrInvalidState)
	}

	s.current = make([]int8, len(src.Data()))
	copy(s.current, src.Data())
	s.iteration = 0
	s.lastResult = nil
	s.st = stateIterating

	return nil
}

// SingleUpdate computes a new full state vector and returns true iff it
// differs from the previous one (i.e. "not yet converged").
func (s *Session) SingleUpdate() (bool, error) {
	if s.st != stateIterating {
		return false, recallErrorf("SingleUpdate", ErrInvalidState)
	}

	next, changed, err := dynamics.Step(s.weight, s.current)
	if err != nil {
		return false, recallErrorf("SingleUpdate", err)
	}
	s.current = next
	s.iteration++
	if !changed {
		s.st = stateConverged
	}

	return changed, nil
}

// RunToFixedPoint iterates SingleUpdate until it returns false or a
// period-2 cycle is detected, forwarding each step to observe (nil is
// valid). On return the session is in state Converged.
func (s *Session) RunToFixedPoint(observe dynamics.StepObserver) (*dynamics.Result, error) {
	if s.st != stateIterating {
		return nil, recallErrorf("RunToFixedPoint", ErrInvalidState)
	}

	result, err := dynamics.RunToFixedPoint(s.weight, s.current, observe)
	if err != nil {
		return nil, recallErrorf("RunToFixedPoint", err)
	}

	s.current = result.FinalState
	s.iteration = result.Iterations
	s.lastResult = result
	s.st = stateConverged

	if s.cfg.logRun {
		detail := "converged"
		if result.Oscillating {
			detail = "oscillating"
		}
		entry := runlog.Entry{
			Kind:         "recall",
			StartedAt:    time.Now().Add(-time.Duration(result.Iterations) * time.Millisecond),
			DurationMS:   0,
			N:            s.n,
			MOrIteration: int64(result.Iterations),
			Detail:       s.refName + ":" + detail,
		}
		_ = runlog.Append(s.baseDir, entry) // diagnostic only; never fails recall
	}

	return result, nil
}

// CurrentState returns a read-only view of the current state vector.
func (s *Session) CurrentState() []int8 { return s.current }

// Iteration returns the current iteration counter.
func (s *Session) Iteration() int { return s.iteration }

// LastResult returns the outcome of the most recent RunToFixedPoint call,
// or nil if none has completed yet.
func (s *Session) LastResult() *dynamics.Result { return s.lastResult }

// Reference returns the loaded ground-truth pattern for the current query,
// or nil before CorruptPattern has been called.
func (s *Session) Reference() *pattern.Pattern { return s.reference }

// SaveCurrentState persists the final state as a pattern file under
// baseDir/patterns/<name>.txt and renders it, then returns the session to
// state Loaded (spec: "(save or clear) → Loaded").
func (s *Session) SaveCurrentState(name string) error {
	if s.st != stateConverged {
		return recallErrorf("SaveCurrentState", ErrInvalidState)
	}

	values := make([]int, len(s.current))
	for i, v := range s.current {
		values[i] = int(v)
	}
	p, err := pattern.FromValues(values)
	if err != nil {
		return recallErrorf("SaveCurrentState", err)
	}

	patternsDir := filepath.Join(s.baseDir, "patterns")
	if err := p.Save(patternsDir, name, s.n); err != nil {
		return recallErrorf("SaveCurrentState", err)
	}
	if err := imaging.ToRaster(p, patternsDir, name, s.cfg.width, s.cfg.height); err != nil {
		return recallErrorf("SaveCurrentState", err)
	}

	s.st = stateLoaded

	return nil
}

// Clear discards the current query (reference, corrupted copies, state)
// and returns the session to state Loaded without persisting anything.
func (s *Session) Clear() {
	s.reference, s.noisy, s.cutP = nil, nil, nil
	s.current = nil
	s.iteration = 0
	s.lastResult = nil
	s.refName = ""
	if s.st != stateIdle {
		s.st = stateLoaded
	}
}
