package formats

import "github.com/katalvlaran/sparsemat/layout"

// Ell stores a matrix as dense padded per-row (column, value) pairs.
// ColIndices and Values are flat Pitch×ColsPerRow buffers sharing one
// physical arrangement: the pair for logical row r, stored position d
// lives at Order.Address(r, d, Pitch, ColsPerRow). A slot whose column
// equals PadColumn is unused padding; its co-located value is arbitrary
// and must never be read. Rows in [NumRows, Pitch) are padding entirely.
type Ell struct {
	NumRows, NumCols int
	NumEntries       int
	ColIndices       []int
	Values           []float64
	ColsPerRow       int
	Pitch            int
	Order            layout.Order
}

// NewEll allocates ELL storage. Returns ErrBadShape, ErrBadPitch or
// ErrBadEntryCount on invalid parameters. Every column slot starts out as
// PadColumn. Complexity: O(pitch × colsPerRow).
func NewEll(rows, cols, entries, colsPerRow, pitch int, order layout.Order) (*Ell, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if pitch < rows {
		return nil, ErrBadPitch
	}
	if entries < 0 || entries > rows*cols {
		return nil, ErrBadEntryCount
	}
	m := &Ell{}
	m.Resize(rows, cols, entries, colsPerRow, pitch, order)

	return m, nil
}

// Resize reallocates the padded storage for the given shape, entry count,
// per-row slot count and pitch, discarding previous contents. Every column
// slot is pre-filled with PadColumn, so the padded-slot invariant holds
// before any entry is written; a conversion that writes nothing still
// leaves a well-formed (empty) matrix behind.
// Complexity: O(pitch × colsPerRow).
func (m *Ell) Resize(rows, cols, entries, colsPerRow, pitch int, order layout.Order) {
	m.NumRows, m.NumCols = rows, cols
	m.NumEntries = entries
	m.ColsPerRow = colsPerRow
	m.Pitch = pitch
	m.Order = order
	m.ColIndices = make([]int, pitch*colsPerRow)
	for i := range m.ColIndices {
		m.ColIndices[i] = PadColumn
	}
	m.Values = make([]float64, pitch*colsPerRow)
}

// Dims returns the logical matrix dimensions. Complexity: O(1).
func (m *Ell) Dims() (rows, cols int) { return m.NumRows, m.NumCols }

// NNZ returns the declared count of logically valid entries. Complexity: O(1).
func (m *Ell) NNZ() int { return m.NumEntries }

// Format reports the storage scheme tag. Complexity: O(1).
func (m *Ell) Format() Format { return ELL }

// Slots returns the padded slot count, pitch × ColsPerRow. Complexity: O(1).
func (m *Ell) Slots() int { return m.Pitch * m.ColsPerRow }
