package imaging_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hopfield/imaging"
	"github.com/katalvlaran/hopfield/pattern"
	"github.com/stretchr/testify/require"
)

func TestBinarize_ThresholdSplitsBlackAndWhite(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 255})

	p, err := imaging.Binarize(img, 2, 1, 127)
	require.NoError(t, err)
	require.Equal(t, []int8{-1, 1}, p.Data())
}

func TestBinarize_RejectsDimensionMismatch(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	_, err := imaging.Binarize(img, 3, 3, 127)
	require.ErrorIs(t, err, imaging.ErrSizeMismatch)
}

func TestRender_RoundTripsWithBinarize(t *testing.T) {
	p, err := pattern.FromValues([]int{1, -1, -1, 1})
	require.NoError(t, err)

	img, err := imaging.Render(p, 2, 2)
	require.NoError(t, err)

	back, err := imaging.Binarize(img, 2, 2, imaging.DefaultThreshold)
	require.NoError(t, err)
	require.Equal(t, p.Data(), back.Data())
}

func TestRender_RejectsSizeMismatch(t *testing.T) {
	p, _ := pattern.FromValues([]int{1, -1})
	_, err := imaging.Render(p, 2, 2)
	require.ErrorIs(t, err, imaging.ErrSizeMismatch)
}

func TestToRaster_WritesPNGFile(t *testing.T) {
	dir := t.TempDir()
	p, _ := pattern.FromValues([]int{1, -1, -1, 1})

	require.NoError(t, imaging.ToRaster(p, dir, "sample", 2, 2))

	info, err := os.Stat(filepath.Join(dir, "sample.png"))
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
