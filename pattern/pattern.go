// Package pattern carries a bipolar vector (values drawn from {-1,+1}) and
// the in-place corruption primitives used to construct recall queries:
// independent sign-flip noise and rectangular occlusion ("cut").
//
// A fresh Pattern is empty; values are appended one at a time until
// Size()==N. A Pattern is either "empty" (N=0) or "full" (Size()==declared
// N); partial states exist only during construction. Invariant: every
// stored value is in {-1,+1}.
package pattern

// Pattern is an ordered sequence of bipolar values. The two-dimensional
// interpretation (width W, height H, N=W*H, row-major index i=y*W+x) is
// carried by external parameters, not by Pattern itself.
type Pattern struct {
	values []int8
}

// New returns an empty Pattern with capacity hinted by n (n may be 0).
func New(n int) *Pattern {
	p := &Pattern{}
	if n > 0 {
		p.values = make([]int8, 0, n)
	}

	return p
}

// FromValues builds a full Pattern from an already-bipolar slice, copying
// it so the caller's backing array can be reused. Returns ErrInvalidValue
// on the first non-bipolar entry.
func FromValues(values []int) (*Pattern, error) {
	p := New(len(values))
	for _, v := range values {
		if err := p.Append(v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Append pushes v onto the vector. Fails with ErrInvalidValue if v is not
// -1 or +1.
func (p *Pattern) Append(v int) error {
	if v != -1 && v != 1 {
		return patternErrorf("Append", ErrInvalidValue)
	}
	p.values = append(p.values, int8(v))

	return nil
}

// Size returns the current length of the vector.
func (p *Pattern) Size() int {
	return len(p.values)
}

// Data returns read-only access to the bipolar vector. Callers MUST NOT
// mutate the returned slice; use Append/AddNoise/Cut to change Pattern state.
func (p *Pattern) Data() []int8 {
	return p.values
}

// At returns the 1-based i-th value. Requires 1<=i<=Size().
func (p *Pattern) At(i int) (int8, error) {
	if i < 1 || i > len(p.values) {
		return 0, patternErrorf("At", ErrInvalidArgument)
	}

	return p.values[i-1], nil
}

// Clone returns a deep, independent copy of p.
func (p *Pattern) Clone() *Pattern {
	cp := make([]int8, len(p.values))
	copy(cp, p.values)

	return &Pattern{values: cp}
}

// Equal reports whether p and other have identical length and values.
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil || len(p.values) != len(other.values) {
		return false
	}
	for i, v := range p.values {
		if v != other.values[i] {
			return false
		}
	}

	return true
}

// Hamming returns the number of positions at which p and other differ.
// Fails with ErrSizeMismatch if the lengths differ. Grounded on the
// reference test suite's "one Hamming step from a stored pattern" fixtures
// (original_source/tests/src/recall.test.cpp).
func (p *Pattern) Hamming(other *Pattern) (int, error) {
	if other == nil || len(p.values) != len(other.values) {
		return 0, patternErrorf("Hamming", ErrSizeMismatch)
	}
	dist := 0
	for i, v := range p.values {
		if v != other.values[i] {
			dist++
		}
	}

	return dist, nil
}
