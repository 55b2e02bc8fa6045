// Package imaging is the thin adaptor between raster images and bipolar
// Pattern vectors. It is explicitly out of the associative-memory core
// (spec §1): image decoding, resizing, and luminance thresholding live
// here only. The core (pattern, packedmatrix, dynamics, training) never
// imports this package; recall imports it only to render rasters of its
// corrupted and recovered patterns.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/hopfield/internal/grid"
	"github.com/katalvlaran/hopfield/pattern"
)

// DefaultThreshold, DefaultWidth and DefaultHeight match the spec's default 64x64,
// threshold=127 front-end configuration.
const (
	DefaultThreshold = 127
	DefaultWidth     = 64
	DefaultHeight    = 64
)

// ErrSizeMismatch indicates the decoded image's dimensions disagree with
// the requested width/height.
var ErrSizeMismatch = errors.New("imaging: image dimensions do not match W,H")

// Binarize takes an already decoded img (already resized to w x h by the caller — resizing
// itself is out of scope here), computes per-pixel luminance as an integer
// average (r+g+b)/3 accumulated into an internal grid, and emits +1 when
// that average is strictly greater than threshold, else -1, in row-major
// order.
func Binarize(img image.Image, w, h, threshold int) (*pattern.Pattern, error) {
	bounds := img.Bounds()
	if bounds.Dx() != w || bounds.Dy() != h {
		return nil, fmt.Errorf("imaging.Binarize: %w", ErrSizeMismatch)
	}

	g, err := grid.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("imaging.Binarize: %w", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gg, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit-scaled components; scale back to 8-bit.
			avg := float64((r>>8 + gg>>8 + b>>8) / 3)
			if err := g.Set(x, y, avg); err != nil {
				return nil, fmt.Errorf("imaging.Binarize: %w", err)
			}
		}
	}

	p := pattern.New(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := g.At(x, y)
			if err != nil {
				return nil, fmt.Errorf("imaging.Binarize: %w", err)
			}
			val := -1
			if v > float64(threshold) {
				val = 1
			}
			if err := p.Append(val); err != nil {
				return nil, fmt.Errorf("imaging.Binarize: %w", err)
			}
		}
	}

	return p, nil
}

// DecodeAndBinarize reads a PNG from r and binarizes it per Binarize.
func DecodeAndBinarize(r io.Reader, w, h, threshold int) (*pattern.Pattern, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging.DecodeAndBinarize: %w", err)
	}

	return Binarize(img, w, h, threshold)
}

// Render maps +1 to white and -1 to black, row-major, into a fresh w x h
// image.
func Render(p *pattern.Pattern, w, h int) (*image.Gray, error) {
	if p.Size() != w*h {
		return nil, fmt.Errorf("imaging.Render: %w", ErrSizeMismatch)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := p.At(y*w + x + 1)
			if err != nil {
				return nil, fmt.Errorf("imaging.Render: %w", err)
			}
			c := color.Gray{Y: 0}
			if v == 1 {
				c.Y = 255
			}
			img.SetGray(x, y, c)
		}
	}

	return img, nil
}

// ToRaster renders p and writes it as dir/name.png. This realizes Pattern's
// to_raster contract (spec §4.1) as a free function rather than a Pattern
// method, since Pattern must not import imaging.
func ToRaster(p *pattern.Pattern, dir, name string, w, h int) error {
	img, err := Render(p, w, h)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return fmt.Errorf("imaging.ToRaster: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imaging.ToRaster: %w", err)
	}

	return nil
}
