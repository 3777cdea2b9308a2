package lanes

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the smallest block worth dispatching to another lane;
// below it, scheduling bookkeeping dominates the per-slot work.
const DefaultGrain = 4096

// Workers returns the default lane count, GOMAXPROCS. Complexity: O(1).
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// BlockCount returns the number of blocks For dispatches for n indices and
// the given grain. Non-positive grain falls back to DefaultGrain.
// Complexity: O(1).
func BlockCount(n, grain int) int {
	if n <= 0 {
		return 0
	}
	if grain <= 0 {
		grain = DefaultGrain
	}

	return (n + grain - 1) / grain
}

// For invokes fn once per block, where blocks are the consecutive half-open
// ranges [start, start+grain) ∩ [0, n) for start = 0, grain, 2·grain, ...
// At most `workers` invocations run concurrently; non-positive workers
// falls back to Workers() and non-positive grain to DefaultGrain. The block
// for index range [start, end) is block number start/grain.
//
// fn must confine its writes to state owned by its block. For returns only
// after every block has completed.
//
// Complexity: O(n) total work, O(n/workers) span.
func For(n, grain, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = DefaultGrain
	}
	if workers <= 0 {
		workers = Workers()
	}

	// Sequential path: same block structure, no goroutines.
	if workers == 1 || n <= grain {
		for start := 0; start < n; start += grain {
			fn(start, min(start+grain, n))
		}

		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += grain {
		lo, hi := start, min(start+grain, n)
		g.Go(func() error {
			fn(lo, hi)

			return nil
		})
	}
	// fn has no error path; Wait only synchronizes.
	_ = g.Wait()
}

// ExclusiveSum replaces counts[i] with the sum of counts[:i] and returns
// the grand total. Applied to per-block survivor counts, it yields each
// block's first write position for a stable compaction. The scan runs over
// one element per block, so its serial cost is negligible next to the
// blocked passes around it. Complexity: O(len(counts)).
func ExclusiveSum(counts []int) int {
	total := 0
	for i, c := range counts {
		counts[i] = total
		total += c
	}

	return total
}
