package reduce

import (
	"context"
	"sync/atomic"
	"time"
)

// executor runs one job's tasks on a bounded pool and records each value
// into a write-once slot indexed by partition. Each task writes exactly
// one slot, so no locking is needed beyond the pool's own shutdown
// barrier.
type executor[T, R any] struct {
	input  []T
	local  LocalReduceFunc[T, R]
	logger Logger

	// aborted flips on the first failure. Tasks that have not started by
	// then are cancelled instead of run; tasks already running finish
	// naturally.
	aborted atomic.Bool
}

func newExecutor[T, R any](input []T, local LocalReduceFunc[T, R], logger Logger) *executor[T, R] {
	return &executor[T, R]{
		input:  input,
		local:  local,
		logger: logger,
	}
}

// Execute runs every task with at most concurrency running at once,
// dispatched FIFO by partition index. It blocks until every task reaches
// a terminal status, then returns the partial results of the completed
// tasks in ascending partition order.
func (e *executor[T, R]) Execute(ctx context.Context, tasks []*Task, concurrency int) []PartialResult[R] {
	slots := make([]R, len(tasks))

	pool := NewPool(concurrency)
	pool.Start()
	for _, task := range tasks {
		pool.Submit(func() {
			e.runTask(ctx, task, slots)
		})
	}
	pool.Close()

	partials := make([]PartialResult[R], 0, len(tasks))
	for i, task := range tasks {
		if task.Status == TaskStatusCompleted {
			partials = append(partials, PartialResult[R]{
				Partition: task.Partition.Index,
				Value:     slots[i],
			})
		}
	}
	return partials
}

func (e *executor[T, R]) runTask(ctx context.Context, task *Task, slots []R) {
	if e.aborted.Load() || ctx.Err() != nil {
		now := time.Now()
		task.Status = TaskStatusCancelled
		task.EndedAt = &now
		e.logger.Debug("Task cancelled before dispatch",
			"task_id", task.ID.String(),
			"partition", task.Partition.Index,
		)
		return
	}

	started := time.Now()
	task.Status = TaskStatusRunning
	task.StartedAt = &started

	p := task.Partition
	value, err := e.local(e.input[p.Start:p.End()])

	ended := time.Now()
	task.EndedAt = &ended

	if err != nil {
		task.Status = TaskStatusFailed
		task.Err = err
		e.aborted.Store(true)
		e.logger.Error("Task failed",
			"task_id", task.ID.String(),
			"partition", p.Index,
			"error", err,
		)
		return
	}

	slots[p.Index] = value
	task.Status = TaskStatusCompleted
	e.logger.Debug("Task completed",
		"task_id", task.ID.String(),
		"partition", p.Index,
		"duration", ended.Sub(started).String(),
	)
}
