package layout

// Order selects the physical arrangement of a logically rows×cols cell grid
// inside a flat backing slice.
type Order int

const (
	// RowMajor keeps each logical row contiguous: cell (r, c) lives at
	// r*cols + c. The zero value, matching Go's native slice-of-rows habit.
	RowMajor Order = iota

	// ColMajor keeps each logical column contiguous: cell (r, c) lives at
	// c*rows + r. Diagonal storage favors this arrangement, since one
	// stored diagonal then occupies one contiguous run.
	ColMajor
)

// String returns the conventional name of the order.
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}

	return "row-major"
}

// Address maps the logical cell (row, col) of a rows×cols grid to its
// physical linear index under o. Inverse of Coordinate.
// Complexity: O(1).
func (o Order) Address(row, col, rows, cols int) int {
	if o == ColMajor {
		return col*rows + row
	}

	return row*cols + col
}

// Coordinate maps a physical linear index back to its logical (row, col)
// cell. Inverse of Address.
// Complexity: O(1).
func (o Order) Coordinate(idx, rows, cols int) (row, col int) {
	if o == ColMajor {
		return idx % rows, idx / rows
	}

	return idx / cols, idx % cols
}

// Remap translates a linear index under the `from` arrangement into the
// linear index addressing the same logical cell under `to`.
// Remap is a bijection on [0, rows*cols); Remap(idx, ..., o, o) == idx.
// Complexity: O(1).
func Remap(idx, rows, cols int, from, to Order) int {
	r, c := from.Coordinate(idx, rows, cols)

	return to.Address(r, c, rows, cols)
}
