package convert

import (
	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/lanes"
)

// slotGeometry captures the fixed parameters every per-slot computation
// depends on, so reconstruction stays a pure function of the slot index.
type slotGeometry struct {
	pitch   int
	numDiag int
	offsets []int
}

func geometryOf(src *formats.Dia) slotGeometry {
	return slotGeometry{pitch: src.Pitch, numDiag: len(src.Offsets), offsets: src.Offsets}
}

// slots returns the padded slot count of the source buffer.
func (g slotGeometry) slots() int { return g.pitch * g.numDiag }

// coordinates reconstructs the logical row, column and diagonal index of
// slot t. Slots enumerate the (row, diagonal) grid row-major, so row
// indices are non-decreasing along t; the CSR offsets reduction relies on
// that order surviving stable compaction. Rows run over the full pitch;
// padding rows in [NumRows, pitch) later fail the row predicate.
// Pure function of t, evaluable in any order on any lane.
// Complexity: O(1).
func (g slotGeometry) coordinates(t int) (row, col, diag int) {
	row = t / g.numDiag
	diag = t % g.numDiag
	col = row + g.offsets[diag]

	return row, col, diag
}

// gather fetches the stored value of logical (row, diagonal), remapping
// through the source's physical arrangement. Complexity: O(1).
func gather(src *formats.Dia, g slotGeometry, row, diag int) float64 {
	return src.Values[src.Order.Address(row, diag, g.pitch, g.numDiag)]
}

// validEntry reports whether a reconstructed triple belongs in COO/CSR
// output: row in [0, numRows), column in [0, numCols) and a non-zero
// value. Padding rows fail the row bound, off-matrix diagonal slots fail
// the column bound, and stored zeros are never materialized.
func validEntry(row, col int, v float64, numRows, numCols int) bool {
	return row >= 0 && row < numRows &&
		col >= 0 && col < numCols &&
		v != 0
}

// remapColumn keeps a column lying in [0, numCols) and sentinels every
// other column to formats.PadColumn. Row bounds and values are not
// consulted: ELL keeps every positional slot.
func remapColumn(col, numCols int) int {
	if col >= 0 && col < numCols {
		return col
	}

	return formats.PadColumn
}

// surveyValid counts, per block, the slots whose reconstructed triple
// passes validEntry. The resulting vector feeds lanes.ExclusiveSum to
// become per-block write offsets for the scatter pass.
// Complexity: O(slots) work, O(blocks) memory.
func surveyValid(src *formats.Dia, g slotGeometry, n int, o Options) []int {
	counts := make([]int, lanes.BlockCount(n, o.Grain))
	lanes.For(n, o.Grain, o.Workers, func(start, end int) {
		c := 0
		for t := start; t < end; t++ {
			row, col, diag := g.coordinates(t)
			if validEntry(row, col, gather(src, g, row, diag), src.NumRows, src.NumCols) {
				c++
			}
		}
		counts[start/o.Grain] = c
	})

	return counts
}
