package training_test

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
	"github.com/katalvlaran/hopfield/training"
	"github.com/stretchr/testify/require"
)

func writePatternFile(t *testing.T, dir, name string, values []int) {
	t.Helper()
	p, err := pattern.FromValues(values)
	require.NoError(t, err)
	require.NoError(t, p.Save(dir, name, len(values)))
}

func TestRun_ProducesWeightMatrixFromPatterns(t *testing.T) {
	base := t.TempDir()
	patternsDir := filepath.Join(base, "patterns")
	require.NoError(t, os.MkdirAll(patternsDir, 0o755))

	writePatternFile(t, patternsDir, "p1", []int{-1, 1, 1, -1})
	writePatternFile(t, patternsDir, "p2", []int{1, -1, -1, 1})

	err := training.Run(base, 4, log.New(os.Stderr, "", 0), training.WithRunLog(false))
	require.NoError(t, err)

	weightPath := filepath.Join(base, "weight_matrix", training.WeightMatrixFileName)
	m, err := packedmatrix.Load(weightPath, 4)
	require.NoError(t, err)
	require.Equal(t, 6, m.Len())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.InDelta(t, -0.5, v, 1e-12)
}

func TestRun_RejectsNonTxtFileInPatternsDir(t *testing.T) {
	base := t.TempDir()
	patternsDir := filepath.Join(base, "patterns")
	require.NoError(t, os.MkdirAll(patternsDir, 0o755))

	writePatternFile(t, patternsDir, "p1", []int{-1, 1, 1, -1})
	require.NoError(t, os.WriteFile(filepath.Join(patternsDir, "notes.md"), []byte("hi"), 0o644))

	err := training.Run(base, 4, log.New(os.Stderr, "", 0), training.WithRunLog(false))
	require.ErrorIs(t, err, training.ErrInvalidPath)
}

func TestRun_AbortsOnMalformedPatternFile(t *testing.T) {
	base := t.TempDir()
	patternsDir := filepath.Join(base, "patterns")
	require.NoError(t, os.MkdirAll(patternsDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(patternsDir, "bad.txt"), []byte("1 2 -1"), 0o644))

	err := training.Run(base, 3, log.New(os.Stderr, "", 0), training.WithRunLog(false))
	require.ErrorIs(t, err, pattern.ErrInvalidValue)
}

func TestRun_ClearsPriorWeightMatrixDirectory(t *testing.T) {
	base := t.TempDir()
	patternsDir := filepath.Join(base, "patterns")
	require.NoError(t, os.MkdirAll(patternsDir, 0o755))
	writePatternFile(t, patternsDir, "p1", []int{-1, 1, 1, -1})

	weightDir := filepath.Join(base, "weight_matrix")
	require.NoError(t, os.MkdirAll(weightDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(weightDir, "stale.txt"), []byte("junk"), 0o644))

	require.NoError(t, training.Run(base, 4, log.New(os.Stderr, "", 0), training.WithRunLog(false)))

	_, err := os.Stat(filepath.Join(weightDir, "stale.txt"))
	require.True(t, os.IsNotExist(err))
}
