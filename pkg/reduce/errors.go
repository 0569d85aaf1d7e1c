package reduce

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a call is rejected before any
	// work is scheduled.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTimeout is returned when the per-call deadline elapses before
	// every task reaches a terminal status.
	ErrTimeout = errors.New("reduce deadline exceeded")

	// ErrCancelled is returned when the caller's context is cancelled
	// before every task reaches a terminal status.
	ErrCancelled = errors.New("reduce cancelled")
)

// A WorkerFailureError reports that a local reduction returned an error.
// Partition identifies the lowest-index failed partition, so repeated runs
// produce the same error even when completion order differs.
type WorkerFailureError struct {
	Partition int
	Cause     error
}

func (e *WorkerFailureError) Error() string {
	return fmt.Sprintf("local reduction failed on partition %d: %v", e.Partition, e.Cause)
}

func (e *WorkerFailureError) Unwrap() error {
	return e.Cause
}

// A CombineError reports an internal consistency violation: the executor
// produced no result, or more than one result, for a partition. It always
// indicates an engine bug rather than a problem with caller-supplied
// functions, and is never retried.
type CombineError struct {
	Partition int
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("inconsistent partial results for partition %d", e.Partition)
}
