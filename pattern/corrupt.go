package pattern

import "math/rand"

// AddNoise independently flips the sign of each position with probability p,
// using rng as the source of randomness (callers pass a local *rand.Rand —
// no process-wide RNG is kept live between calls, per the resource model).
// Requires Size()==n and p in [0,1]; preserves bipolarity and length.
func (p *Pattern) AddNoise(prob float64, n int, rng *rand.Rand) error {
	if prob < 0 || prob > 1 {
		return patternErrorf("AddNoise", ErrInvalidArgument)
	}
	if len(p.values) != n {
		return patternErrorf("AddNoise", ErrSizeMismatch)
	}

	for i := range p.values {
		if rng.Float64() < prob {
			p.values[i] = -p.values[i]
		}
	}

	return nil
}

// Cut fills the rectangular window [fromRow,toRow] x [fromCol,toCol]
// (1-based, inclusive) with newValue. Requires Size()==w*h,
// 1<=fromRow<=toRow<=h, 1<=fromCol<=toCol<=w, and newValue in {-1,+1}.
// Indexing is row-major: index = (y-1)*w + (x-1).
func (p *Pattern) Cut(newValue int, fromRow, toRow, fromCol, toCol, w, h int) error {
	if newValue != -1 && newValue != 1 {
		return patternErrorf("Cut", ErrInvalidValue)
	}
	if len(p.values) != w*h {
		return patternErrorf("Cut", ErrSizeMismatch)
	}
	if fromRow < 1 || toRow > h || fromRow > toRow {
		return patternErrorf("Cut", ErrInvalidArgument)
	}
	if fromCol < 1 || toCol > w || fromCol > toCol {
		return patternErrorf("Cut", ErrInvalidArgument)
	}

	for y := fromRow; y <= toRow; y++ {
		for x := fromCol; x <= toCol; x++ {
			idx := (y-1)*w + (x - 1)
			p.values[idx] = int8(newValue)
		}
	}

	return nil
}
