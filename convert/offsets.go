package convert

import (
	"sort"

	"github.com/katalvlaran/sparsemat/lanes"
)

// indicesToOffsets reduces a non-decreasing row-index sequence into CSR
// row offsets: offsets[i] = count of entries with row < i, for every i in
// [0, len(offsets)). With offsets sized rows+1 this yields offsets[0] = 0
// and offsets[rows] = len(rowIdx), and the result is non-decreasing.
//
// Each output element is an independent binary search over the sorted
// input, so the whole histogram-to-prefix-sum reduction runs as a blocked
// parallel loop with no serial scan over the entries.
//
// Precondition: rowIdx is non-decreasing (the kernels' traversal order
// guarantees it). Complexity: O(len(offsets)·log(len(rowIdx))) work.
func indicesToOffsets(rowIdx []int, offsets []int, o Options) {
	lanes.For(len(offsets), o.Grain, o.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			offsets[i] = sort.SearchInts(rowIdx, i)
		}
	})
}
