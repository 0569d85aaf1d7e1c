package jobs

import "math"

// Built-in reductions. Empty partitions reduce to the identity so that
// worker counts exceeding the input length still combine correctly.
func init() {
	Register("sum", Job{
		Local:    sumLocal,
		Combine:  func(a, b float64) (float64, error) { return a + b, nil },
		Identity: 0,
	})
	Register("product", Job{
		Local:    productLocal,
		Combine:  func(a, b float64) (float64, error) { return a * b, nil },
		Identity: 1,
	})
	Register("min", Job{
		Local:    minLocal,
		Combine:  func(a, b float64) (float64, error) { return math.Min(a, b), nil },
		Identity: math.Inf(1),
	})
	Register("max", Job{
		Local:    maxLocal,
		Combine:  func(a, b float64) (float64, error) { return math.Max(a, b), nil },
		Identity: math.Inf(-1),
	})
	Register("count", Job{
		Local:    func(items []float64) (float64, error) { return float64(len(items)), nil },
		Combine:  func(a, b float64) (float64, error) { return a + b, nil },
		Identity: 0,
	})
}

func sumLocal(items []float64) (float64, error) {
	sum := 0.0
	for _, v := range items {
		sum += v
	}
	return sum, nil
}

func productLocal(items []float64) (float64, error) {
	product := 1.0
	for _, v := range items {
		product *= v
	}
	return product, nil
}

func minLocal(items []float64) (float64, error) {
	m := math.Inf(1)
	for _, v := range items {
		m = math.Min(m, v)
	}
	return m, nil
}

func maxLocal(items []float64) (float64, error) {
	m := math.Inf(-1)
	for _, v := range items {
		m = math.Max(m, v)
	}
	return m, nil
}
