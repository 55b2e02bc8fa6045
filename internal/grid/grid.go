// Package grid provides a small row-major float64 buffer used by the
// image-acquisition adaptor to accumulate per-pixel luminance before
// binarization. It is deliberately narrow: no graph adapters, no linear
// algebra kernels — the core engine never touches this package directly.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
var ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major buffer of float64 luminance samples.
// h is height (rows), w is width (cols), data holds h*w elements.
type Grid struct {
	h, w int
	data []float64
}

// New allocates a w×h Grid initialized to zero.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{h: h, w: w, data: make([]float64, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// index computes the flat offset for (x,y) or returns ErrIndexOutOfBounds.
func (g *Grid) index(x, y int) (int, error) {
	if y < 0 || y >= g.h {
		return 0, gridErrorf("At", y, x, ErrIndexOutOfBounds)
	}
	if x < 0 || x >= g.w {
		return 0, gridErrorf("At", y, x, ErrIndexOutOfBounds)
	}
	return y*g.w + x, nil
}

// At retrieves the sample at column x, row y (both 0-based).
func (g *Grid) At(x, y int) (float64, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return 0, err
	}
	return g.data[idx], nil
}

// Set assigns value v at column x, row y (both 0-based).
func (g *Grid) Set(x, y int, v float64) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.data[idx] = v
	return nil
}

// Mean returns the arithmetic mean of all samples; 0 for an empty grid.
func (g *Grid) Mean() float64 {
	if len(g.data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range g.data {
		sum += v
	}
	return sum / float64(len(g.data))
}
