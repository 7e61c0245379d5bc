package engine

import (
	"errors"
	"fmt"
)

// ComputeError wraps an unexpected numeric failure while analyzing one
// ticker. It is surfaced in that ticker's result and never aborts the batch.
type ComputeError struct {
	Symbol string
	Err    error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("compute %s: %v", e.Symbol, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

// IsComputeError reports whether err is a ComputeError.
func IsComputeError(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce)
}
