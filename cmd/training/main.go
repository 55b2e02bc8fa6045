// Command training reads patterns/*.txt and writes
// weight_matrix/weight_matrix.txt via a Hebbian fill. It takes no required
// arguments; failures print a single diagnostic line and exit non-zero
// (spec §6.4).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/hopfield/training"
)

func main() {
	baseDir := flag.String("base-dir", ".", "pipeline base directory")
	neurons := flag.Int("neurons", 4096, "neuron count N (64x64 patterns by default)")
	stats := flag.Bool("stats", false, "log a CPU/memory snapshot before and after the fill")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	var opts []training.Option
	if *stats {
		opts = append(opts, training.WithResourceStats())
	}

	if err := training.Run(*baseDir, *neurons, logger, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "training: %v\n", err)
		os.Exit(1)
	}
}
