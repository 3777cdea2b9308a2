package convert

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/lanes"
)

// DiaToCoo converts a DIA matrix into freshly allocated COO storage.
//
// Every padded slot is reconstructed into its (row, column, value) triple;
// triples with an out-of-range row or column, or a zero value, are
// dropped. Compaction is stable, so surviving triples come out sorted by
// row, and by diagonal position within a row. The source is never mutated.
// The destination is sized to the true survivor count, which overrides a
// disagreeing declared NumEntries on the source.
//
// A source declaring zero entries short-circuits: the destination is
// resized empty and no reconstruction work is performed.
//
// Returns ErrNilMatrix or ErrMalformedSource; on error the destination
// state is unspecified.
//
// Complexity: O(pitch × diagonals) work, O(blocks) auxiliary memory.
func DiaToCoo(src *formats.Dia, dst *formats.Coo, opts Options) error {
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

	// Pass 1: survivor count per block; scan turns counts into offsets.
	counts := surveyValid(src, g, n, o)
	total := lanes.ExclusiveSum(counts)
	dst.Resize(src.NumRows, src.NumCols, total)

	// Pass 2: rebuild and scatter. Block b owns the output range starting
	// at counts[b]; ranges are disjoint, so no locking.
	lanes.For(n, o.Grain, o.Workers, func(start, end int) {
		at := counts[start/o.Grain]
		for t := start; t < end; t++ {
			row, col, diag := g.coordinates(t)
			v := gather(src, g, row, diag)
			if !validEntry(row, col, v, src.NumRows, src.NumCols) {
				continue
			}
			dst.RowIndices[at] = row
			dst.ColIndices[at] = col
			dst.Values[at] = v
			at++
		}
	})

	return nil
}
