package reduce

import "time"

// A Logger receives engine progress events. Both *slog.Logger and the
// project's internal logging.Logger satisfy it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Options configures a single ParallelReduce call. There is no hidden
// global state: everything the engine consults is here or in the call
// arguments.
type Options struct {
	// Workers is the number of partitions and the concurrency limit.
	// Must be at least 1. It may exceed the input length, in which case
	// the surplus partitions are empty.
	Workers int

	// Timeout bounds the whole call. Zero means no deadline.
	Timeout time.Duration

	// Policy splits the input into partitions. Nil means EvenSplit.
	Policy Policy

	// Logger receives per-task progress events. Nil disables logging.
	Logger Logger
}
