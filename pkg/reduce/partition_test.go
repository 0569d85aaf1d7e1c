package reduce

import (
	"errors"
	"testing"
)

func TestEvenSplit_Sizing(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		k           int
		wantLengths []int
	}{
		{
			name:        "even division",
			n:           8,
			k:           4,
			wantLengths: []int{2, 2, 2, 2},
		},
		{
			name:        "remainder spread over first partitions",
			n:           10,
			k:           3,
			wantLengths: []int{4, 3, 3},
		},
		{
			name:        "more partitions than elements",
			n:           2,
			k:           5,
			wantLengths: []int{1, 1, 0, 0, 0},
		},
		{
			name:        "empty input",
			n:           0,
			k:           4,
			wantLengths: []int{0, 0, 0, 0},
		},
		{
			name:        "single partition",
			n:           7,
			k:           1,
			wantLengths: []int{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partitions, err := EvenSplit{}.Split(tt.n, tt.k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(partitions) != len(tt.wantLengths) {
				t.Fatalf("expected %d partitions, got %d", len(tt.wantLengths), len(partitions))
			}
			for i, p := range partitions {
				if p.Length != tt.wantLengths[i] {
					t.Errorf("partition %d: expected length %d, got %d", i, tt.wantLengths[i], p.Length)
				}
			}
		})
	}
}

func TestEvenSplit_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		n    int
		k    int
	}{
		{name: "zero partitions", n: 10, k: 0},
		{name: "negative partitions", n: 10, k: -3},
		{name: "negative length", n: -1, k: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvenSplit{}.Split(tt.n, tt.k)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

// Partition laws: for a sweep of (n, k), partitions cover the input exactly
// once, in order, contiguously, with lengths differing by at most one.
func TestEvenSplit_Laws(t *testing.T) {
	for n := 0; n <= 50; n++ {
		for k := 1; k <= 12; k++ {
			partitions, err := EvenSplit{}.Split(n, k)
			if err != nil {
				t.Fatalf("Split(%d, %d): unexpected error: %v", n, k, err)
			}

			next := 0
			minLen, maxLen := n+1, -1
			for i, p := range partitions {
				if p.Index != i {
					t.Fatalf("Split(%d, %d): partition %d has index %d", n, k, i, p.Index)
				}
				if p.Start != next {
					t.Fatalf("Split(%d, %d): partition %d starts at %d, expected %d", n, k, i, p.Start, next)
				}
				if p.Length < 0 {
					t.Fatalf("Split(%d, %d): partition %d has negative length", n, k, i)
				}
				next = p.End()
				minLen = min(minLen, p.Length)
				maxLen = max(maxLen, p.Length)
			}
			if next != n {
				t.Fatalf("Split(%d, %d): partitions cover %d elements, expected %d", n, k, next, n)
			}
			if maxLen-minLen > 1 {
				t.Fatalf("Split(%d, %d): partition lengths differ by %d", n, k, maxLen-minLen)
			}
		}
	}
}

func TestEvenSplit_Deterministic(t *testing.T) {
	first, err := EvenSplit{}.Split(1000, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := EvenSplit{}.Split(1000, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("partition %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
