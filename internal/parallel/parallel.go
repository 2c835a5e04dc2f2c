// Package parallel fans independent loop iterations out to goroutines.
//
// The kernels use it for sweeps whose iterations write disjoint outputs,
// so the result never depends on scheduling.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Upper bound on worker goroutines.
	MinChunkSize int  // Minimum iterations per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4,
	}
}

// Sequential returns a configuration that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for i in [0, n).
// Falls back to a plain loop when disabled or when n is below MinChunkSize.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < max(cfg.MinChunkSize, 2) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// For2D executes f(a, b) for every pair in [0, outer) x [0, inner).
// Used for (batch, channel) and (in-channel, out-channel) sweeps.
func For2D(outer, inner int, f func(a, b int), cfg Config) {
	if outer <= 0 || inner <= 0 {
		return
	}
	For(outer*inner, func(k int) {
		f(k/inner, k%inner)
	}, cfg)
}
