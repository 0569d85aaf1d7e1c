// Package dataset loads and generates the numeric vectors the CLI feeds
// into the reduce engine.
package dataset

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
)

// Find expands glob patterns (doublestar syntax) to regular files. Broken
// symlinks and directories are skipped.
func Find(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range matches {
			info, err := os.Lstat(name)
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() {
				files = append(files, name)
			}
		}
	}
	return files, nil
}

// Load reads every file matched by patterns and parses each
// whitespace-separated token as a float64, in file order.
func Load(patterns []string) ([]float64, error) {
	files, err := Find(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched %v", patterns)
	}

	var values []float64
	for _, file := range files {
		fileValues, err := readValues(file)
		if err != nil {
			return nil, err
		}
		values = append(values, fileValues...)
	}
	return values, nil
}

func readValues(filePath string) ([]float64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for scanner.Scan() {
		token := scanner.Text()
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid value %q: %w", filePath, token, err)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// Generate produces n values in [-1, 1), deterministic per seed so that
// synthetic runs are reproducible.
func Generate(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64()*2 - 1
	}
	return values
}
