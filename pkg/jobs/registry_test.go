package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nemanja-m/goreduce/pkg/reduce"
)

func runJob(t *testing.T, name string, input []float64, workers int) float64 {
	t.Helper()
	job, err := Get(name)
	require.NoError(t, err)

	result, err := reduce.ParallelReduce(
		context.Background(),
		input,
		job.Local,
		job.Combine,
		job.Identity,
		reduce.Options{Workers: workers},
	)
	require.NoError(t, err)
	return result
}

func TestBuiltinJobs(t *testing.T) {
	input := []float64{4, -1, 3, 2, 5}

	tests := []struct {
		job  string
		want float64
	}{
		{job: "sum", want: 13},
		{job: "product", want: -120},
		{job: "min", want: -1},
		{job: "max", want: 5},
		{job: "count", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.job, func(t *testing.T) {
			require.Equal(t, tt.want, runJob(t, tt.job, input, 3))
		})
	}
}

func TestBuiltinJobs_MoreWorkersThanElements(t *testing.T) {
	input := []float64{2, 7}

	require.Equal(t, 9.0, runJob(t, "sum", input, 5))
	require.Equal(t, 14.0, runJob(t, "product", input, 5))
	require.Equal(t, 2.0, runJob(t, "min", input, 5))
	require.Equal(t, 7.0, runJob(t, "max", input, 5))
	require.Equal(t, 2.0, runJob(t, "count", input, 5))
}

func TestRegister_DuplicateName(t *testing.T) {
	require.NoError(t, Register("dup", Job{}))
	require.Error(t, Register("dup", Job{}))
}

func TestGet_UnknownJob(t *testing.T) {
	_, err := Get("no-such-job")
	require.Error(t, err)
}

func TestList_ContainsBuiltins(t *testing.T) {
	names := List()
	for _, builtin := range []string{"count", "max", "min", "product", "sum"} {
		require.Contains(t, names, builtin)
	}
}
