package formats

// Csr stores a matrix as per-row contiguous column/value slices plus a row
// offsets array. RowOffsets has length NumRows+1, is non-decreasing, starts
// at 0 and ends at the entry count; the entries of row i occupy
// ColIndices[RowOffsets[i]:RowOffsets[i+1]] and the matching Values slice.
type Csr struct {
	NumRows, NumCols int
	RowOffsets       []int
	ColIndices       []int
	Values           []float64
}

// NewCsr allocates CSR storage for the given shape and entry count, with a
// zeroed offsets array. Returns ErrBadShape or ErrBadEntryCount on invalid
// parameters. Complexity: O(rows + entries).
func NewCsr(rows, cols, entries int) (*Csr, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if entries < 0 || entries > rows*cols {
		return nil, ErrBadEntryCount
	}
	m := &Csr{}
	m.Resize(rows, cols, entries)

	return m, nil
}

// Resize reallocates the storage for the given shape and entry count,
// discarding previous contents. RowOffsets comes back zeroed, which is the
// valid offsets array of an empty matrix. Complexity: O(rows + entries).
func (m *Csr) Resize(rows, cols, entries int) {
	m.NumRows, m.NumCols = rows, cols
	m.RowOffsets = make([]int, rows+1)
	m.ColIndices = make([]int, entries)
	m.Values = make([]float64, entries)
}

// Dims returns the logical matrix dimensions. Complexity: O(1).
func (m *Csr) Dims() (rows, cols int) { return m.NumRows, m.NumCols }

// NNZ returns the stored entry count. Complexity: O(1).
func (m *Csr) NNZ() int { return len(m.Values) }

// Format reports the storage scheme tag. Complexity: O(1).
func (m *Csr) Format() Format { return CSR }

// RowSlice returns the column indices and values of row i.
// Returns ErrOutOfRange for an out-of-bounds row. The returned slices alias
// the matrix storage. Complexity: O(1).
func (m *Csr) RowSlice(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.NumRows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.RowOffsets[i], m.RowOffsets[i+1]

	return m.ColIndices[lo:hi], m.Values[lo:hi], nil
}
