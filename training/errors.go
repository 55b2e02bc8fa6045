// SPDX-License-Identifier: MIT
package training

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates the patterns directory contains something
	// other than *.txt regular files, or could not be listed.
	ErrInvalidPath = errors.New("training: patterns directory must contain only *.txt files")
)

func trainingErrorf(op string, err error) error {
	return fmt.Errorf("training.%s: %w", op, err)
}
