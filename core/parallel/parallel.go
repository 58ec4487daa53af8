// Package parallel provides helpers for splitting CPU-bound loops, such as
// the expansion kernel's row and product-column sweeps, across worker
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits the half-open range [0, items) into contiguous chunks,
// one per available CPU core, and runs fn(start, end) for each chunk in its
// own goroutine. It returns once every chunk has been processed. Callers must
// ensure fn writes to disjoint regions for different chunks.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // no need for more workers than items
	}

	// Chunk size per worker (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		// Skip if there's no range to handle
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) sequentially when items does not
// exceed threshold, and delegates to Parallelize above it. Small expansions
// and fits are not worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
