package formats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsemat/layout"
)

// ToDense materializes the DIA matrix as a gonum dense matrix, scattering
// every stored diagonal and skipping padding slots and zero values.
// Complexity: O(rows × diagonals).
func (m *Dia) ToDense() *mat.Dense {
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	nd := len(m.Offsets)
	for diag := 0; diag < nd; diag++ {
		for row := 0; row < m.NumRows; row++ {
			col := row + m.Offsets[diag]
			if col < 0 || col >= m.NumCols {
				continue
			}
			if v := m.Values[m.Order.Address(row, diag, m.Pitch, nd)]; v != 0 {
				d.Set(row, col, v)
			}
		}
	}

	return d
}

// ToDense materializes the COO matrix as a gonum dense matrix.
// Duplicate triples overwrite, last-write-wins. Complexity: O(entries).
func (m *Coo) ToDense() *mat.Dense {
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	for i, v := range m.Values {
		d.Set(m.RowIndices[i], m.ColIndices[i], v)
	}

	return d
}

// ToDense materializes the CSR matrix as a gonum dense matrix.
// Complexity: O(rows + entries).
func (m *Csr) ToDense() *mat.Dense {
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	for i := 0; i < m.NumRows; i++ {
		for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
			d.Set(i, m.ColIndices[k], m.Values[k])
		}
	}

	return d
}

// ToDense materializes the ELL matrix as a gonum dense matrix, skipping
// sentinel columns and padding rows. Complexity: O(pitch × colsPerRow).
func (m *Ell) ToDense() *mat.Dense {
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	for p := 0; p < m.Pitch; p++ {
		for s := 0; s < m.ColsPerRow; s++ {
			col := m.ColIndices[m.Order.Address(p, s, m.Pitch, m.ColsPerRow)]
			if p >= m.NumRows || col == PadColumn {
				continue
			}
			d.Set(p, col, m.Values[m.Order.Address(p, s, m.Pitch, m.ColsPerRow)])
		}
	}

	return d
}

// DiaFromDense builds a DIA matrix from a dense source, storing every
// diagonal holding at least one non-zero. Offsets come out ascending and
// the pitch equals the row count (no extra padding). NumEntries is the
// exact non-zero count. Returns ErrBadShape for an empty source.
// Complexity: O(rows × cols).
func DiaFromDense(d *mat.Dense, order layout.Order) (*Dia, error) {
	rows, cols := d.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Offsets range over [-(rows-1), cols-1]; index by offset+rows-1.
	occupied := make([]bool, rows+cols-1)
	nnz := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if d.At(i, j) != 0 {
				occupied[j-i+rows-1] = true
				nnz++
			}
		}
	}
	var offsets []int
	for k, on := range occupied {
		if on {
			offsets = append(offsets, k-(rows-1))
		}
	}

	m, err := NewDia(rows, cols, nnz, offsets, rows, order)
	if err != nil {
		return nil, err
	}
	for diag, off := range m.Offsets {
		for row := 0; row < rows; row++ {
			col := row + off
			if col < 0 || col >= cols {
				continue
			}
			m.Values[order.Address(row, diag, m.Pitch, len(m.Offsets))] = d.At(row, col)
		}
	}

	return m, nil
}
