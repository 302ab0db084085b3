// Package parallel fans independent per-element work out to a bounded set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines; <= 0 means runtime.NumCPU().
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// WithWorkers returns a copy of cfg using n workers. n <= 0 keeps the CPU
// count; n == 1 disables parallelism.
func (cfg Config) WithWorkers(n int) Config {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	cfg.NumWorkers = n
	cfg.Enabled = n > 1
	return cfg
}

func (cfg Config) workers() int {
	if cfg.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return cfg.NumWorkers
}

// For executes f(i) for i in [0, n). Chunks of consecutive indices run on
// separate goroutines; it falls back to a plain loop when parallelism is
// disabled or n is below MinChunkSize.
//
// If f panics on a worker, For waits for the remaining chunks and re-panics on
// the calling goroutine with the first recovered value.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.workers() < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.workers()-1)/cfg.workers(), cfg.MinChunkSize, 1)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		panicked bool
		cause    any
	)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() {
						panicked = true
						cause = r
					})
				}
			}()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()

	if panicked {
		panic(cause)
	}
}

// Map returns [f(0), ..., f(n-1)], computed with For. Results keep index
// order regardless of scheduling.
func Map[T any](n int, f func(i int) T, cfg Config) []T {
	out := make([]T, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}
