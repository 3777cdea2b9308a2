package convert

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/lanes"
)

// DiaToCsr converts a DIA matrix into freshly allocated CSR storage.
//
// Reconstruction and compaction are identical to DiaToCoo, but compacted
// row indices are not retained in the destination: they feed the
// row-offsets reduction and are discarded. Because slots enumerate the
// (row, diagonal) grid row-major and compaction is stable, the compacted
// row sequence is non-decreasing, which the reduction requires.
//
// The produced RowOffsets is non-decreasing with RowOffsets[0] = 0 and
// RowOffsets[NumRows] equal to the entry count. A source declaring zero
// entries short-circuits to an empty destination.
//
// Returns ErrNilMatrix or ErrMalformedSource; on error the destination
// state is unspecified.
//
// Complexity: O(pitch × diagonals + rows·log(nnz)) work,
// O(nnz) auxiliary memory for the row-index scratch.
func DiaToCsr(src *formats.Dia, dst *formats.Csr, opts Options) error {
	if src == nil || dst == nil {
		return ErrNilMatrix
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	o := opts.normalize()

	g := geometryOf(src)
	n := g.slots()
	if src.NumEntries == 0 || n == 0 {
		dst.Resize(src.NumRows, src.NumCols, 0)

		return nil
	}

	counts := surveyValid(src, g, n, o)
	total := lanes.ExclusiveSum(counts)
	dst.Resize(src.NumRows, src.NumCols, total)

	// The compacted row indices are the one scratch buffer the fused
	// pipeline still needs; the offsets reduction consumes them.
	rows := make([]int, total)
	lanes.For(n, o.Grain, o.Workers, func(start, end int) {
		at := counts[start/o.Grain]
		for t := start; t < end; t++ {
			row, col, diag := g.coordinates(t)
			v := gather(src, g, row, diag)
			if !validEntry(row, col, v, src.NumRows, src.NumCols) {
				continue
			}
			rows[at] = row
			dst.ColIndices[at] = col
			dst.Values[at] = v
			at++
		}
	})

	indicesToOffsets(rows, dst.RowOffsets, o)

	return nil
}
