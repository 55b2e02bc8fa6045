// Package packedmatrix stores a coupling matrix W of order N that is
// symmetric with a zero diagonal, in a packed strict-upper-triangular
// buffer of length M = N*(N-1)/2. This halves memory relative to a dense
// N×N buffer and removes diagonal special-casing from the inner loops of
// Dynamics (local-field computation).
package packedmatrix

// PackedSymMatrix is a symmetric, zero-diagonal coupling matrix of order N,
// stored as its strict upper triangle in row-major traversal order.
// Before Fill, the buffer has zero length; after Fill it has exactly
// M = N*(N-1)/2 entries.
type PackedSymMatrix struct {
	n      int
	buffer []float64
}

// New returns an empty PackedSymMatrix of order n (buffer length zero).
// Requires n>=0.
func New(n int) (*PackedSymMatrix, error) {
	if n < 0 {
		return nil, packedErrorf("New", ErrInvalidArgument)
	}

	return &PackedSymMatrix{n: n}, nil
}

// Order returns N.
func (m *PackedSymMatrix) Order() int { return m.n }

// Len returns M, the packed buffer's length (0 before Fill/Load).
func (m *PackedSymMatrix) Len() int { return len(m.buffer) }

func (m *PackedSymMatrix) size() int {
	if m.n < 2 {
		return 0
	}

	return m.n * (m.n - 1) / 2
}

// offset maps the 1-based pair (i,j) with i<j to its packed offset in
// [0,M). Row i starts at cumulative offset (i-1)*(2N-i)/2 (the sum of row
// lengths N-1, N-2, ..., N-(i-1)); j-i-1 selects within that row.
func offset(i, j, n int) int {
	return (i-1)*(2*n-i)/2 + (j - i - 1)
}

// At returns W[i,j] for 1-based i,j in [1,N]: 0 when i==j, the packed
// entry otherwise (symmetric, so argument order does not matter).
func (m *PackedSymMatrix) At(i, j int) (float64, error) {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return 0, packedErrorf("At", ErrInvalidArgument)
	}
	if i == j {
		return 0, nil
	}
	if len(m.buffer) != m.size() {
		return 0, packedErrorf("At", ErrSizeMismatch)
	}

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	return m.buffer[offset(lo, hi, m.n)], nil
}

// advance iterates the strict upper triangle in row-major order: from (i,j)
// with 1<=i<=N-1, i+1<=j<=N, it yields (i,j+1) if j<N, else (i+1,i+2), or
// the terminal state (N,N+1) once the last pair has been produced.
func advance(i, j, n int) (int, int) {
	if j < n {
		return i, j + 1
	}

	return i + 1, i + 2
}
