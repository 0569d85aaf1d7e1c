package jobs

import (
	"fmt"
	"sort"

	"github.com/nemanja-m/goreduce/pkg/reduce"
)

// A Job bundles one named reduction over float64 data: the local reduction
// applied per partition, the combine function merging partials and its
// identity value. Combine is expected to be associative with Identity as
// its two-sided identity element.
type Job struct {
	Local    reduce.LocalReduceFunc[float64, float64]
	Combine  reduce.CombineFunc[float64]
	Identity float64
}

var registry = make(map[string]Job)

func Register(name string, job Job) error {
	if _, exists := registry[name]; exists {
		return fmt.Errorf("job already registered: %s", name)
	}
	registry[name] = job
	return nil
}

func Get(name string) (Job, error) {
	job, exists := registry[name]
	if !exists {
		return Job{}, fmt.Errorf("job not found: %s", name)
	}
	return job, nil
}

func List() []string {
	var names []string
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
