package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nemanja-m/goreduce/internal/dataset"
	"github.com/nemanja-m/goreduce/internal/shared/config"
	"github.com/nemanja-m/goreduce/internal/shared/logging"
	"github.com/nemanja-m/goreduce/pkg/jobs"
	"github.com/nemanja-m/goreduce/pkg/reduce"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		input      = flag.String("input", "", "input files glob pattern (whitespace-separated numeric values)")
		jobName    = flag.String("job", "sum", "reduction to run")
		workers    = flag.Int("workers", 0, "number of workers (overrides config)")
		generate   = flag.Int("generate", 0, "generate N synthetic values instead of reading input")
		seed       = flag.Uint64("seed", 1, "seed for synthetic values")
	)
	flag.Parse()

	cfg, err := config.LoadReduce(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level))

	if *workers > 0 {
		cfg.Workers = *workers
	}

	job, err := jobs.Get(*jobName)
	if err != nil {
		logger.Fatal("Unknown job", "job", *jobName, "available", jobs.List())
	}

	var values []float64
	switch {
	case *generate > 0:
		values = dataset.Generate(*generate, *seed)
	case *input != "":
		values, err = dataset.Load([]string{*input})
		if err != nil {
			logger.Fatal("Failed to load input", "error", err)
		}
	default:
		logger.Fatal("Either -input or -generate must be specified")
	}

	logger.Info("Starting reduction",
		"job", *jobName,
		"values", len(values),
		"workers", cfg.Workers,
		"timeout", cfg.Timeout.String(),
	)

	opts := reduce.Options{
		Workers: cfg.Workers,
		Timeout: cfg.Timeout,
		Logger:  logger,
	}
	result, err := reduce.ParallelReduce(context.Background(), values, job.Local, job.Combine, job.Identity, opts)
	if err != nil {
		logger.Fatal("Reduction failed", "error", err)
	}

	fmt.Printf("%s(%d values) = %v\n", *jobName, len(values), result)
}
