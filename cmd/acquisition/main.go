// Command acquisition turns every raster under images/source_images into a
// bipolar pattern file under patterns/, and a thresholded preview raster
// under images/binarized_images. It takes no required arguments; failures
// print a single diagnostic line and exit non-zero (spec §6.4).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hopfield/imaging"
	"github.com/katalvlaran/hopfield/internal/fsio"
)

func main() {
	baseDir := flag.String("base-dir", ".", "pipeline base directory")
	threshold := flag.Int("threshold", imaging.DefaultThreshold, "binarization luminance threshold")
	width := flag.Int("width", imaging.DefaultWidth, "expected image width")
	height := flag.Int("height", imaging.DefaultHeight, "expected image height")
	flag.Parse()

	if err := run(*baseDir, *threshold, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "acquisition: %v\n", err)
		os.Exit(1)
	}
}

func run(baseDir string, threshold, width, height int) error {
	sourceDir := filepath.Join(baseDir, "images", "source_images")
	binarizedDir := filepath.Join(baseDir, "images", "binarized_images")
	patternsDir := filepath.Join(baseDir, "patterns")

	if err := fsio.EnsureClearDir(binarizedDir); err != nil {
		return err
	}
	if err := fsio.EnsureDir(patternsDir); err != nil {
		return err
	}

	files, err := os.ReadDir(sourceDir)
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".png") {
			continue
		}
		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))

		in, err := os.Open(filepath.Join(sourceDir, f.Name()))
		if err != nil {
			return err
		}
		p, err := imaging.DecodeAndBinarize(in, width, height, threshold)
		in.Close()
		if err != nil {
			return err
		}

		if err := p.Save(patternsDir, name, width*height); err != nil {
			return err
		}
		if err := imaging.ToRaster(p, binarizedDir, name, width, height); err != nil {
			return err
		}
	}

	return nil
}
