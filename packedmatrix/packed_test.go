package packedmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
	"github.com/stretchr/testify/require"
)

func TestOrderZeroAndOne_EmptyBuffer(t *testing.T) {
	for _, n := range []int{0, 1} {
		m, err := packedmatrix.New(n)
		require.NoError(t, err)
		require.Equal(t, 0, m.Len())

		require.NoError(t, m.Fill(nil))
		require.Equal(t, 0, m.Len())
	}
}

func TestAt_DiagonalIsZero(t *testing.T) {
	m, err := packedmatrix.New(4)
	require.NoError(t, err)
	p1, _ := pattern.FromValues([]int{-1, 1, 1, -1})
	p2, _ := pattern.FromValues([]int{1, -1, -1, 1})
	require.NoError(t, m.Fill([]*pattern.Pattern{p1, p2}))

	for i := 1; i <= 4; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestAt_OutOfRange(t *testing.T) {
	m, _ := packedmatrix.New(4)
	_, err := m.At(0, 1)
	require.ErrorIs(t, err, packedmatrix.ErrInvalidArgument)
	_, err = m.At(1, 5)
	require.ErrorIs(t, err, packedmatrix.ErrInvalidArgument)
}

// TestAt_SymmetricRegardlessOfArgumentOrder checks through At() that an
// order-6 matrix answers the same for (i,j) and (j,i), which covers
// offset(4,2)==offset(2,4); the literal N=6 offset table is checked
// directly in offset_internal_test.go.
func TestAt_SymmetricRegardlessOfArgumentOrder(t *testing.T) {
	n := 6
	// Fill from two patterns (some pairs get weight 0), then confirm
	// At(i,j)==At(j,i) for all pairs.
	p1, _ := pattern.FromValues([]int{1, -1, 1, -1, 1, -1})
	p2, _ := pattern.FromValues([]int{1, 1, -1, -1, 1, 1})
	m, err := packedmatrix.New(n)
	require.NoError(t, err)
	require.NoError(t, m.Fill([]*pattern.Pattern{p1, p2}))
	require.Equal(t, n*(n-1)/2, m.Len())

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			vij, err := m.At(i, j)
			require.NoError(t, err)
			vji, err := m.At(j, i)
			require.NoError(t, err)
			require.Equal(t, vij, vji)
		}
	}
}
