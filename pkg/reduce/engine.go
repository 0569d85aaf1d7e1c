// Package reduce implements a deterministic data-parallel reduce engine.
//
// ParallelReduce splits an input slice into contiguous partitions, runs a
// caller-supplied local reduction over each partition on a bounded worker
// pool, and folds the partial results in ascending partition index order.
// Tasks may finish in any order; the fold order never varies, so results
// are reproducible run to run for a fixed worker count.
package reduce

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ParallelReduce reduces input to a single value using opts.Workers
// concurrent tasks.
//
// The call blocks until every task reaches a terminal status. On the
// first local reduction error, tasks not yet dispatched are cancelled,
// already-running tasks finish naturally, and the call fails with a
// WorkerFailureError wrapping the lowest-index failure. A cancelled ctx
// surfaces as ErrCancelled; an elapsed deadline (ctx's or opts.Timeout)
// as ErrTimeout. Nothing is retried and no state survives the call.
func ParallelReduce[T, R any](
	ctx context.Context,
	input []T,
	local LocalReduceFunc[T, R],
	combine CombineFunc[R],
	identity R,
	opts Options,
) (R, error) {
	var zero R

	if opts.Workers < 1 {
		return zero, fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidArgument, opts.Workers)
	}
	if local == nil || combine == nil {
		return zero, fmt.Errorf("%w: local reduce and combine functions are required", ErrInvalidArgument)
	}

	policy := opts.Policy
	if policy == nil {
		policy = EvenSplit{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	partitions, err := policy.Split(len(input), opts.Workers)
	if err != nil {
		return zero, err
	}

	jobID := uuid.New()
	tasks := make([]*Task, len(partitions))
	for i, partition := range partitions {
		tasks[i] = &Task{
			ID:        uuid.New(),
			JobID:     jobID,
			Partition: partition,
			Status:    TaskStatusPending,
		}
	}

	logger.Info("Starting reduce job",
		"job_id", jobID.String(),
		"input_len", len(input),
		"workers", opts.Workers,
	)

	exec := newExecutor(input, local, logger)
	partials := exec.Execute(ctx, tasks, opts.Workers)

	// The lowest-index failure wins, so error messages are reproducible
	// regardless of which partition failed first in wall-clock time.
	for _, task := range tasks {
		if task.Status == TaskStatusFailed {
			logger.Error("Reduce job failed",
				"job_id", jobID.String(),
				"partition", task.Partition.Index,
				"error", task.Err,
			)
			return zero, &WorkerFailureError{Partition: task.Partition.Index, Cause: task.Err}
		}
	}

	cancelled := 0
	for _, task := range tasks {
		if task.Status == TaskStatusCancelled {
			cancelled++
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil || cancelled > 0 {
		cause := ErrCancelled
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			cause = ErrTimeout
		}
		logger.Error("Reduce job aborted",
			"job_id", jobID.String(),
			"completed_tasks", len(partials),
			"cancelled_tasks", cancelled,
			"error", cause,
		)
		return zero, fmt.Errorf("%w: %d of %d tasks completed", cause, len(partials), len(tasks))
	}

	result, err := Combine(identity, len(partitions), partials, combine)
	if err != nil {
		return zero, err
	}

	logger.Info("Reduce job completed", "job_id", jobID.String())
	return result, nil
}
