package dynamics_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/hopfield/dynamics"
	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
	"github.com/stretchr/testify/require"
)

func n4Matrix(t *testing.T) (*packedmatrix.PackedSymMatrix, *pattern.Pattern, *pattern.Pattern) {
	t.Helper()
	p1, err := pattern.FromValues([]int{-1, 1, 1, -1})
	require.NoError(t, err)
	p2, err := pattern.FromValues([]int{1, -1, -1, 1})
	require.NoError(t, err)

	m, err := packedmatrix.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]*pattern.Pattern{p1, p2}))

	return m, p1, p2
}

func TestSign_ZeroIsPositive(t *testing.T) {
	require.Equal(t, int8(1), dynamics.Sign(0))
	require.Equal(t, int8(1), dynamics.Sign(0.001))
	require.Equal(t, int8(-1), dynamics.Sign(-0.001))
}

func TestLocalField_N4WorkedExample(t *testing.T) {
	m, _, _ := n4Matrix(t)

	// s = [-1,-1,1,-1], expected h = [-0.5, +1.5, +0.5, -0.5].
	s := []int8{-1, -1, 1, -1}
	want := []float64{-0.5, 1.5, 0.5, -0.5}

	for i := 1; i <= 4; i++ {
		h, err := dynamics.LocalField(m, s, i)
		require.NoError(t, err)
		require.InDelta(t, want[i-1], h, 1e-12)
	}
}

func TestEnergy_N4WorkedExample(t *testing.T) {
	m, p1, p2 := n4Matrix(t)

	e1, err := dynamics.Energy(m, p1.Data())
	require.NoError(t, err)
	require.InDelta(t, -3.0, e1, 1e-12)

	e2, err := dynamics.Energy(m, p2.Data())
	require.NoError(t, err)
	require.InDelta(t, -3.0, e2, 1e-12)
}

func TestStep_RecoversStoredPatternFromOneStepAway(t *testing.T) {
	m, p1, _ := n4Matrix(t)

	// s = [-1,-1,1,-1] is Hamming distance 1 from p1 = [-1,1,1,-1].
	s := []int8{-1, -1, 1, -1}
	next, changed, err := dynamics.Step(m, s)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, p1.Data(), next)
}

func TestStep_RejectsSizeMismatch(t *testing.T) {
	m, _, _ := n4Matrix(t)
	_, _, err := dynamics.Step(m, []int8{1, -1})
	require.ErrorIs(t, err, dynamics.ErrSizeMismatch)
}

func TestRunToFixedPoint_ConvergesToStoredPattern(t *testing.T) {
	m, p1, _ := n4Matrix(t)

	var observed []int
	result, err := dynamics.RunToFixedPoint(m, []int8{-1, -1, 1, -1}, func(state []int8, iteration int, energy float64) {
		observed = append(observed, iteration)
	})
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.False(t, result.Oscillating)
	require.Equal(t, p1.Data(), result.FinalState)
	require.NotEmpty(t, observed)
}

func TestRunToFixedPoint_ConvergesImmediatelyOnStoredPattern(t *testing.T) {
	m, p1, _ := n4Matrix(t)

	result, err := dynamics.RunToFixedPoint(m, p1.Data(), nil)
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.Equal(t, 1, result.Iterations)
	require.Equal(t, p1.Data(), result.FinalState)
}

// TestRunToFixedPoint_DetectsPeriodTwoOscillation builds an order-2
// anti-Hebbian matrix (a single negative weight) whose synchronous dynamics
// never settle: [1,1] -> [-1,-1] -> [1,1] -> ... forever. This is the
// smallest matrix that can exhibit the period-2 limit cycle RunToFixedPoint
// must detect rather than loop on indefinitely.
func TestRunToFixedPoint_DetectsPeriodTwoOscillation(t *testing.T) {
	anti, err := pattern.FromValues([]int{1, -1})
	require.NoError(t, err)

	m, err := packedmatrix.New(2)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]*pattern.Pattern{anti}))

	w, err := m.At(1, 2)
	require.NoError(t, err)
	require.Less(t, w, 0.0)

	done := make(chan struct{})
	var result *dynamics.Result
	var runErr error
	go func() {
		result, runErr = dynamics.RunToFixedPoint(m, []int8{1, 1}, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunToFixedPoint did not return: period-2 cycle guard failed to fire")
	}

	require.NoError(t, runErr)
	require.True(t, result.Oscillating)
	require.False(t, result.Converged)
	require.Equal(t, 2, result.Iterations)
	require.Equal(t, []int8{1, 1}, result.FinalState)
}
