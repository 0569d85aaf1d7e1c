package reduce

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusRunning   TaskStatus = "RUNNING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusFailed    TaskStatus = "FAILED"
	TaskStatusCancelled TaskStatus = "CANCELLED"
)

// A Task tracks one partition's local reduction through its lifecycle.
// Tasks start PENDING and end in exactly one of COMPLETED, FAILED or
// CANCELLED. The executor owns all status transitions; the engine only
// observes them after execution finishes.
type Task struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	Partition Partition
	Status    TaskStatus

	StartedAt *time.Time
	EndedAt   *time.Time

	Err error
}

// A LocalReduceFunc reduces one partition of the input to a single value.
// It receives exactly the elements within its partition bounds, which may
// be an empty slice. It is assumed pure: deterministic given its slice and
// free of observable side effects. The engine documents but does not
// enforce this.
type LocalReduceFunc[T, R any] func(items []T) (R, error)

// A CombineFunc merges two partial results. It is assumed associative,
// with the job's identity value as its two-sided identity element; the
// engine relies on this for reproducibility across worker counts but does
// not verify it.
type CombineFunc[R any] func(left, right R) (R, error)

// A PartialResult is the value produced by one completed task.
type PartialResult[R any] struct {
	Partition int
	Value     R
}
