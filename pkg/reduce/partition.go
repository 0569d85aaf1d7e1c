package reduce

import "fmt"

// A Partition is a contiguous sub-range of the input assigned to one task.
// Partitions are immutable once created.
type Partition struct {
	Index  int
	Start  int
	Length int
}

// End returns the exclusive upper bound of the partition's range.
func (p Partition) End() int {
	return p.Start + p.Length
}

// A Policy splits an input of length n into k partitions. Implementations
// must return partitions that are contiguous, non-overlapping, cover the
// input exactly once and are ordered by ascending index. Splitting must be
// deterministic: the same (n, k) always yields the same boundaries.
type Policy interface {
	Split(n, k int) ([]Partition, error)
}

// EvenSplit is the default policy. It balances partition lengths so that
// they differ by at most one element: with base = n/k, the first n%k
// partitions get base+1 elements and the rest get base.
type EvenSplit struct{}

func (EvenSplit) Split(n, k int) ([]Partition, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: partition count must be positive, got %d", ErrInvalidArgument, k)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative input length %d", ErrInvalidArgument, n)
	}

	base := n / k
	remainder := n % k

	partitions := make([]Partition, k)
	start := 0
	for i := range partitions {
		length := base
		if i < remainder {
			length++
		}
		partitions[i] = Partition{Index: i, Start: start, Length: length}
		start += length
	}

	return partitions, nil
}
