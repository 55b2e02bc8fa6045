// SPDX-License-Identifier: MIT
package recall

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates an operation was invoked out of order
	// against the Idle→Loaded→Queried→Iterating→Converged state machine.
	ErrInvalidState = errors.New("recall: operation invalid in current state")
)

func recallErrorf(op string, err error) error {
	return fmt.Errorf("recall.%s: %w", op, err)
}
