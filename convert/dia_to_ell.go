package convert

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/lanes"
)

// DiaToEll converts a DIA matrix into freshly allocated ELL storage with
// the same pitch, per-row slot count (one per stored diagonal) and
// physical arrangement as the source.
//
// No compaction happens: ELL is padded by design, so the destination keeps
// exactly one slot per source slot. Each slot's reconstructed column is
// kept when it lies in [0, NumCols) and replaced with formats.PadColumn
// otherwise; values are copied verbatim and never filtered, a sentinel
// slot's value is simply unused downstream. Rows and zero values are not
// checked here.
//
// A source declaring zero entries short-circuits after the resize; the
// destination's slots are already all-sentinel.
//
// Returns ErrNilMatrix or ErrMalformedSource; on error the destination
// state is unspecified.
//
// Complexity: O(pitch × diagonals) work, O(1) auxiliary memory.
func DiaToEll(src *formats.Dia, dst *formats.Ell, opts Options) error {
	if src == nil || dst == nil {
		return ErrNilMatrix
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	o := opts.normalize()

	g := geometryOf(src)
	dst.Resize(src.NumRows, src.NumCols, src.NumEntries, g.numDiag, g.pitch, src.Order)
	n := g.slots()
	if src.NumEntries == 0 || n == 0 {
		return nil
	}

	// Slot-to-slot remap: logical slot t writes exactly one destination
	// slot, so lanes write disjointly.
	lanes.For(n, o.Grain, o.Workers, func(start, end int) {
		for t := start; t < end; t++ {
			row, col, diag := g.coordinates(t)
			dst.ColIndices[dst.Order.Address(row, diag, g.pitch, g.numDiag)] = remapColumn(col, src.NumCols)
		}
	})
	copy(dst.Values, src.Values)

	return nil
}
