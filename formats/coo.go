package formats

// Coo stores a matrix as parallel, unordered (row, column, value) triples.
// RowIndices, ColIndices and Values always share one length, the entry
// count.
type Coo struct {
	NumRows, NumCols int
	RowIndices       []int
	ColIndices       []int
	Values           []float64
}

// NewCoo allocates COO storage for the given shape and entry count.
// Returns ErrBadShape or ErrBadEntryCount on invalid parameters.
// Complexity: O(entries).
func NewCoo(rows, cols, entries int) (*Coo, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if entries < 0 || entries > rows*cols {
		return nil, ErrBadEntryCount
	}
	m := &Coo{}
	m.Resize(rows, cols, entries)

	return m, nil
}

// Resize reallocates the triple storage for the given shape and entry
// count, discarding previous contents. Conversion kernels call Resize on
// their destination once the true entry count is known; the fresh slices
// are then written disjointly by the parallel lanes.
// Complexity: O(entries).
func (m *Coo) Resize(rows, cols, entries int) {
	m.NumRows, m.NumCols = rows, cols
	m.RowIndices = make([]int, entries)
	m.ColIndices = make([]int, entries)
	m.Values = make([]float64, entries)
}

// Dims returns the logical matrix dimensions. Complexity: O(1).
func (m *Coo) Dims() (rows, cols int) { return m.NumRows, m.NumCols }

// NNZ returns the stored entry count. Complexity: O(1).
func (m *Coo) NNZ() int { return len(m.Values) }

// Format reports the storage scheme tag. Complexity: O(1).
func (m *Coo) Format() Format { return COO }
