// Package training orchestrates the Hebbian construction of a weight
// matrix from a directory of pattern files: it reads every *.txt file in
// patterns/, collects them into an ordered set, fills a fresh
// packedmatrix.PackedSymMatrix, and writes weight_matrix/weight_matrix.txt.
// The order in which files are read is implementation-defined and
// irrelevant — the Hebbian sum is commutative and the matrix is symmetric.
package training

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/hopfield/internal/fsio"
	"github.com/katalvlaran/hopfield/internal/runlog"
	"github.com/katalvlaran/hopfield/internal/sysstats"
	"github.com/katalvlaran/hopfield/packedmatrix"
	"github.com/katalvlaran/hopfield/pattern"
)

// WeightMatrixFileName is the fixed name training writes under
// baseDir/weight_matrix/.
const WeightMatrixFileName = "weight_matrix.txt"

// Run reads baseDir/patterns/*.txt (each exactly n bipolar tokens),
// Hebbian-fills a PackedSymMatrix of order n, and writes
// baseDir/weight_matrix/weight_matrix.txt. Any malformed pattern file
// aborts the whole run with ErrSizeMismatch/ErrInvalidValue; on successful
// return the output file contains exactly M=n*(n-1)/2 weights.
func Run(baseDir string, n int, logger *log.Logger, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if logger == nil {
		logger = log.Default()
	}

	start := time.Now()

	patternsDir := filepath.Join(baseDir, "patterns")
	weightDir := filepath.Join(baseDir, "weight_matrix")

	if err := fsio.EnsureDir(patternsDir); err != nil {
		return trainingErrorf("Run", err)
	}
	if err := fsio.EnsureClearDir(weightDir); err != nil {
		return trainingErrorf("Run", err)
	}

	if cfg.stats {
		if snap, err := sysstats.Take(); err == nil {
			logger.Printf("training: resource snapshot before fill: %s", snap)
		} else {
			logger.Printf("training: resource snapshot unavailable: %v", err)
		}
	}

	patterns, err := loadPatterns(patternsDir, n)
	if err != nil {
		return trainingErrorf("Run", err)
	}

	m, err := packedmatrix.New(n)
	if err != nil {
		return trainingErrorf("Run", err)
	}
	if err := m.Fill(patterns); err != nil {
		return trainingErrorf("Run", err)
	}

	if err := m.Save(filepath.Join(weightDir, WeightMatrixFileName)); err != nil {
		return trainingErrorf("Run", err)
	}

	if cfg.stats {
		if snap, err := sysstats.Take(); err == nil {
			logger.Printf("training: resource snapshot after fill: %s", snap)
		} else {
			logger.Printf("training: resource snapshot unavailable: %v", err)
		}
	}

	if cfg.logRun {
		entry := runlog.Entry{
			Kind:         "training",
			StartedAt:    start,
			DurationMS:   time.Since(start).Milliseconds(),
			N:            n,
			MOrIteration: int64(m.Len()),
			Detail:       filepath.Join(weightDir, WeightMatrixFileName),
		}
		if err := runlog.Append(baseDir, entry); err != nil {
			// Diagnostic only: never turn a successful training run into a failure.
			logger.Printf("training: run-log append failed: %v", err)
		}
	}

	return nil
}

// loadPatterns enforces that patternsDir contains only *.txt regular files,
// then loads each as an n-length bipolar Pattern.
func loadPatterns(patternsDir string, n int) ([]*pattern.Pattern, error) {
	entries, err := fsio.ListTextFiles(patternsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	allFiles, err := fsio.RegularFilesOtherThan(patternsDir, map[string]bool{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	for _, name := range allFiles {
		if !strings.HasSuffix(name, ".txt") {
			return nil, ErrInvalidPath
		}
	}

	patterns := make([]*pattern.Pattern, 0, len(entries))
	for _, path := range entries {
		dir, file := filepath.Split(path)
		name := strings.TrimSuffix(file, ".txt")
		p, err := pattern.Load(strings.TrimSuffix(dir, string(filepath.Separator)), name, n)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	return patterns, nil
}
