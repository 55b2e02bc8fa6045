package packedmatrix

import "github.com/katalvlaran/hopfield/pattern"

// Fill clears the buffer, validates every pattern in patterns against order
// N (ErrSizeMismatch on length mismatch, ErrInvalidValue on a non-bipolar
// entry — checked even though Pattern already enforces bipolarity in
// Append, since Fill is the last line of defense against a caller-built
// slice), then generates exactly M entries in strict-upper-triangle
// row-major traversal order:
//
//	W[i,j] = (1/N) * sum_p p[i]*p[j]   for every i<j
//
// equivalently W = (1/N) * sum_p (p p^T - I) with the diagonal suppressed.
// On success the buffer has length M and the final traversal state is
// (N, N+1); Fill asserts this internally as a consistency check.
func (m *PackedSymMatrix) Fill(patterns []*pattern.Pattern) error {
	m.buffer = nil

	n := m.n
	for _, p := range patterns {
		if p.Size() != n {
			return packedErrorf("Fill", ErrSizeMismatch)
		}
		for _, v := range p.Data() {
			if v != -1 && v != 1 {
				return packedErrorf("Fill", ErrInvalidValue)
			}
		}
	}

	size := m.size()
	if size == 0 {
		m.buffer = make([]float64, 0)
		return nil
	}

	buf := make([]float64, 0, size)
	i, j := 1, 2
	for k := 0; k < size; k++ {
		var sum float64
		for _, p := range patterns {
			vi, _ := p.At(i)
			vj, _ := p.At(j)
			sum += float64(vi) * float64(vj)
		}
		buf = append(buf, sum/float64(n))
		i, j = advance(i, j, n)
	}

	if i != n || j != n+1 {
		return packedErrorf("Fill", ErrSizeMismatch)
	}

	m.buffer = buf

	return nil
}
