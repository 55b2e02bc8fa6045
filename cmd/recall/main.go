// Command recall corrupts a chosen reference pattern, runs synchronous
// sign dynamics to a fixed point (or detected oscillation), and saves the
// recovered state. It recovers a single reference pattern by a literal
// filename supplied via a trivial flag; this level is not part of the core
// (spec §6.4). Failures print a single diagnostic line and exit non-zero.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/hopfield/internal/convview"
	"github.com/katalvlaran/hopfield/recall"
)

func main() {
	baseDir := flag.String("base-dir", ".", "pipeline base directory")
	neurons := flag.Int("neurons", 4096, "neuron count N (64x64 patterns by default)")
	patternName := flag.String("pattern", "pattern_0", "reference pattern file name (without .txt)")
	noise := flag.Float64("noise", 0.08, "add_noise probability for the corrupted query")
	useCut := flag.Bool("cut", false, "recover from the rectangular-occlusion query instead of the noisy one")
	seed := flag.Int64("seed", 0, "RNG seed; 0 means non-deterministic")
	tui := flag.Bool("tui", false, "attach a live terminal view of the convergence loop")
	flag.Parse()

	if err := run(*baseDir, *neurons, *patternName, *noise, *useCut, *seed, *tui); err != nil {
		fmt.Fprintf(os.Stderr, "recall: %v\n", err)
		os.Exit(1)
	}
}

func run(baseDir string, n int, patternName string, noise float64, useCut bool, seed int64, useTUI bool) error {
	session := recall.NewSession(baseDir, n, recall.WithNoiseProbability(noise))

	if err := session.LoadWeightMatrix(); err != nil {
		return err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	if err := session.CorruptPattern(patternName, rng); err != nil {
		return err
	}

	kind := recall.Noisy
	if useCut {
		kind = recall.Cut
	}
	if err := session.SetInitialState(kind); err != nil {
		return err
	}

	var observe func([]int8, int, float64)
	var updates chan convview.Update
	var program *tea.Program
	done := make(chan error, 1)

	if useTUI {
		updates = make(chan convview.Update, 16)
		observe = session.LiveObserver(updates)
		program = tea.NewProgram(convview.New(updates))
		go func() {
			_, err := program.Run()
			done <- err
		}()
	}

	result, err := session.RunToFixedPoint(observe)
	if useTUI {
		updates <- convview.Update{Done: true, Converged: result != nil && result.Converged}
		close(updates)
		<-done
	}
	if err != nil {
		return err
	}

	if result.Oscillating {
		fmt.Printf("recall: %s did not converge to a fixed point; period-2 oscillation detected after %d iterations\n", patternName, result.Iterations)
	} else {
		fmt.Printf("recall: %s converged after %d iterations (energy unavailable post-hoc; see -tui for live energy)\n", patternName, result.Iterations)
	}

	return session.SaveCurrentState(patternName + ".recovered")
}
