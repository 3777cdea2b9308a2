package formats

import "github.com/katalvlaran/sparsemat/layout"

// Dia stores a matrix as a set of dense padded diagonals.
//
// Offsets holds one signed offset per stored diagonal, each the
// column-minus-row displacement of that diagonal (0 is the main diagonal,
// positive offsets sit above it). Values is a flat Pitch×len(Offsets)
// buffer: the slot for logical row r of stored diagonal d lives at
// Order.Address(r, d, Pitch, len(Offsets)). Rows in [NumRows, Pitch) are
// padding introduced by the allocation pitch; slots whose column
// r+Offsets[d] falls outside [0, NumCols) are padding introduced by the
// diagonal running off the matrix. Padding slots hold arbitrary values.
//
// NumEntries declares the count of logically valid entries and is allowed
// to disagree with the padded buffer occupancy; conversions recount.
type Dia struct {
	NumRows, NumCols int
	NumEntries       int
	Offsets          []int
	Values           []float64
	Pitch            int
	Order            layout.Order
}

// NewDia allocates a DIA matrix with a zeroed values buffer of
// pitch × len(offsets) slots. The offsets slice is copied.
// Returns ErrBadShape, ErrBadPitch or ErrBadEntryCount on invalid
// parameters. Complexity: O(pitch × diagonals) for the allocation.
func NewDia(rows, cols, entries int, offsets []int, pitch int, order layout.Order) (*Dia, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if pitch < rows {
		return nil, ErrBadPitch
	}
	if entries < 0 || entries > rows*cols {
		return nil, ErrBadEntryCount
	}

	return &Dia{
		NumRows:    rows,
		NumCols:    cols,
		NumEntries: entries,
		Offsets:    append([]int(nil), offsets...),
		Values:     make([]float64, pitch*len(offsets)),
		Pitch:      pitch,
		Order:      order,
	}, nil
}

// Validate checks the structural invariants the conversion kernels assume:
// positive shape, pitch covering every row, a values buffer of exactly
// pitch × diagonal-count slots and a declared entry count within range.
// Kernels perform no defensive validation of their own; every public
// conversion entry point calls Validate and refuses a malformed source.
// Complexity: O(1).
func (m *Dia) Validate() error {
	if m.NumRows <= 0 || m.NumCols <= 0 {
		return ErrBadShape
	}
	if m.Pitch < m.NumRows {
		return ErrBadPitch
	}
	if len(m.Values) != m.Pitch*len(m.Offsets) {
		return ErrBadBuffer
	}
	if m.NumEntries < 0 || m.NumEntries > m.NumRows*m.NumCols {
		return ErrBadEntryCount
	}

	return nil
}

// Dims returns the logical matrix dimensions. Complexity: O(1).
func (m *Dia) Dims() (rows, cols int) { return m.NumRows, m.NumCols }

// NNZ returns the declared count of logically valid entries. Complexity: O(1).
func (m *Dia) NNZ() int { return m.NumEntries }

// Format reports the storage scheme tag. Complexity: O(1).
func (m *Dia) Format() Format { return DIA }

// NumDiagonals returns the count of stored diagonals. Complexity: O(1).
func (m *Dia) NumDiagonals() int { return len(m.Offsets) }

// ValueAt returns the stored value for logical row `row` of stored diagonal
// `diag` (an index into Offsets, not an offset). Padding slots return their
// stored value unfiltered. Returns ErrOutOfRange when either index is out
// of bounds. Complexity: O(1).
func (m *Dia) ValueAt(row, diag int) (float64, error) {
	if row < 0 || row >= m.Pitch || diag < 0 || diag >= len(m.Offsets) {
		return 0, ErrOutOfRange
	}

	return m.Values[m.Order.Address(row, diag, m.Pitch, len(m.Offsets))], nil
}

// SetValue stores v at logical row `row` of stored diagonal `diag`.
// Returns ErrOutOfRange when either index is out of bounds.
// Complexity: O(1).
func (m *Dia) SetValue(row, diag int, v float64) error {
	if row < 0 || row >= m.Pitch || diag < 0 || diag >= len(m.Offsets) {
		return ErrOutOfRange
	}
	m.Values[m.Order.Address(row, diag, m.Pitch, len(m.Offsets))] = v

	return nil
}
