package reduce

import "fmt"

// Combine folds k partial results into one value, strictly in ascending
// partition index order starting from identity. The fold order is fixed
// deliberately: floating-point addition is not associative in practice,
// and a fixed order makes results bit-for-bit reproducible across runs at
// the cost of not reordering for speed.
//
// Every partition index in [0, k) must be present exactly once; a missing
// or duplicated index yields a CombineError.
func Combine[R any](identity R, k int, partials []PartialResult[R], fn CombineFunc[R]) (R, error) {
	var zero R

	seen := make([]bool, k)
	ordered := make([]R, k)
	for _, partial := range partials {
		if partial.Partition < 0 || partial.Partition >= k || seen[partial.Partition] {
			return zero, &CombineError{Partition: partial.Partition}
		}
		seen[partial.Partition] = true
		ordered[partial.Partition] = partial.Value
	}
	for i, ok := range seen {
		if !ok {
			return zero, &CombineError{Partition: i}
		}
	}

	result := identity
	for i, value := range ordered {
		merged, err := fn(result, value)
		if err != nil {
			return zero, fmt.Errorf("combining partition %d: %w", i, err)
		}
		result = merged
	}
	return result, nil
}
