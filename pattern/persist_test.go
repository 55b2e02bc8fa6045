package pattern_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hopfield/pattern"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, _ := pattern.FromValues([]int{-1, 1, 1, -1, 1})
	require.NoError(t, p.Save(dir, "p1", 5))

	loaded, err := pattern.Load(dir, "p1", 5)
	require.NoError(t, err)
	require.True(t, p.Equal(loaded))
}

func TestLoad_SizeMismatch(t *testing.T) {
	dir := t.TempDir()
	p, _ := pattern.FromValues([]int{-1, 1, 1, -1, 1})
	require.NoError(t, p.Save(dir, "p1", 5))

	_, err := pattern.Load(dir, "p1", 4)
	require.ErrorIs(t, err, pattern.ErrSizeMismatch)
}

func TestLoad_InvalidValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("1 2 -1"), 0o644))

	_, err := pattern.Load(dir, "bad", 3)
	require.ErrorIs(t, err, pattern.ErrInvalidValue)
}

func TestSaveLoad_EmptyPatternForN0(t *testing.T) {
	dir := t.TempDir()
	p := pattern.New(0)
	require.NoError(t, p.Save(dir, "empty", 0))

	loaded, err := pattern.Load(dir, "empty", 0)
	require.NoError(t, err)
	require.Equal(t, 0, loaded.Size())
}
