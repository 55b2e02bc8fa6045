package packedmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
	"github.com/stretchr/testify/require"
)

// TestFill_N4WorkedExample reproduces the literal §8 worked example.
func TestFill_N4WorkedExample(t *testing.T) {
	p1, _ := pattern.FromValues([]int{-1, 1, 1, -1})
	p2, _ := pattern.FromValues([]int{1, -1, -1, 1})

	m, err := packedmatrix.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]*pattern.Pattern{p1, p2}))
	require.Equal(t, 6, m.Len())

	want := map[[2]int]float64{
		{1, 2}: -0.5,
		{1, 3}: -0.5,
		{1, 4}: 0.5,
		{2, 3}: 0.5,
		{2, 4}: -0.5,
		{3, 4}: -0.5,
	}
	for pair, exp := range want {
		got, err := m.At(pair[0], pair[1])
		require.NoError(t, err)
		require.InDelta(t, exp, got, 1e-12)
	}
}

func TestFill_RejectsSizeMismatch(t *testing.T) {
	m, _ := packedmatrix.New(4)
	bad, _ := pattern.FromValues([]int{1, -1, 1})
	err := m.Fill([]*pattern.Pattern{bad})
	require.ErrorIs(t, err, packedmatrix.ErrSizeMismatch)
	require.Equal(t, 0, m.Len())
}

func TestFill_ClearsExistingBufferOnRefill(t *testing.T) {
	p1, _ := pattern.FromValues([]int{-1, 1, 1, -1})
	m, _ := packedmatrix.New(4)
	require.NoError(t, m.Fill([]*pattern.Pattern{p1}))
	first := m.Len()

	p2, _ := pattern.FromValues([]int{1, -1, -1, 1})
	require.NoError(t, m.Fill([]*pattern.Pattern{p1, p2}))
	require.Equal(t, first, m.Len())
}
