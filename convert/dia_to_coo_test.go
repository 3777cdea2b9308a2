package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/convert"
	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/layout"
)

// TestDiaToCoo_SingleDiagonal checks the canonical 4×4 main-diagonal case.
func TestDiaToCoo_SingleDiagonal(t *testing.T) {
	src := singleDiagonal(t)
	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))

	assert.Equal(t, []int{0, 1, 2, 3}, dst.RowIndices)
	assert.Equal(t, []int{0, 1, 2, 3}, dst.ColIndices)
	assert.Equal(t, []float64{1, 2, 3, 4}, dst.Values)
}

// TestDiaToCoo_DropsZeroValue checks that a stored zero is never
// materialized: the 4×4 fixture with the row-2 value zeroed yields three
// triples.
func TestDiaToCoo_DropsZeroValue(t *testing.T) {
	src := singleDiagonal(t)
	require.NoError(t, src.SetValue(2, 0, 0))

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))

	assert.Equal(t, 3, dst.NNZ())
	assert.Equal(t, []int{0, 1, 3}, dst.RowIndices)
	assert.Equal(t, []int{0, 1, 3}, dst.ColIndices)
	assert.Equal(t, []float64{1, 2, 4}, dst.Values)
}

// TestDiaToCoo_DropsOutOfRangeColumns checks that a diagonal running off
// the matrix contributes only its in-range slots.
func TestDiaToCoo_DropsOutOfRangeColumns(t *testing.T) {
	src, err := formats.NewDia(3, 3, 1, []int{2}, 3, layout.ColMajor)
	require.NoError(t, err)
	require.NoError(t, src.SetValue(0, 0, 5)) // col 2: in range
	require.NoError(t, src.SetValue(1, 0, 6)) // col 3: off matrix
	require.NoError(t, src.SetValue(2, 0, 7)) // col 4: off matrix

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))

	assert.Equal(t, []int{0}, dst.RowIndices)
	assert.Equal(t, []int{2}, dst.ColIndices)
	assert.Equal(t, []float64{5}, dst.Values)
}

// TestDiaToCoo_DropsPitchPadding checks that rows in [NumRows, Pitch) are
// dropped even when their slots hold non-zero garbage.
func TestDiaToCoo_DropsPitchPadding(t *testing.T) {
	src, err := formats.NewDia(3, 3, 3, []int{0}, 5, layout.ColMajor)
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		require.NoError(t, src.SetValue(row, 0, float64(row+1)))
	}
	require.NoError(t, src.SetValue(3, 0, 9)) // padding rows
	require.NoError(t, src.SetValue(4, 0, 9))

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))

	assert.Equal(t, []int{0, 1, 2}, dst.RowIndices)
	assert.Equal(t, []float64{1, 2, 3}, dst.Values)
}

// TestDiaToCoo_ZeroEntriesShortCircuit checks the declared-empty source:
// empty destination, even when the buffer holds junk.
func TestDiaToCoo_ZeroEntriesShortCircuit(t *testing.T) {
	src, err := formats.NewDia(4, 4, 0, []int{0}, 4, layout.ColMajor)
	require.NoError(t, err)
	require.NoError(t, src.SetValue(1, 0, 3)) // ignored: source declares empty

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))

	assert.Zero(t, dst.NNZ())
	rows, cols := dst.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 4, cols)
}

// TestDiaToCoo_ResizesOnDeclaredMismatch checks that the destination size
// follows the true survivor count, not the declared one.
func TestDiaToCoo_ResizesOnDeclaredMismatch(t *testing.T) {
	src := singleDiagonal(t)
	require.NoError(t, src.SetValue(1, 0, 0)) // one survivor fewer than declared
	src.NumEntries = 4

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))
	assert.Equal(t, 3, dst.NNZ())

	src.NumEntries = 2 // declared too small: still resized to the truth
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))
	assert.Equal(t, 3, dst.NNZ())
}

// TestDiaToCoo_OrderIndependence runs the same conversion across worker
// and grain settings and demands byte-identical output: compaction must
// not depend on scheduling.
func TestDiaToCoo_OrderIndependence(t *testing.T) {
	src := tridiagonal(t, 97, layout.ColMajor)

	var want formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &want, convert.Options{Workers: 1, Grain: 1 << 20}))

	for _, o := range []convert.Options{
		{Workers: 1, Grain: 1},
		{Workers: 8, Grain: 1},
		{Workers: 8, Grain: 7},
		{Workers: 3, Grain: 64},
		{},
	} {
		var got formats.Coo
		require.NoError(t, convert.DiaToCoo(src, &got, o))
		assert.Equal(t, want.RowIndices, got.RowIndices, "options %+v", o)
		assert.Equal(t, want.ColIndices, got.ColIndices, "options %+v", o)
		assert.Equal(t, want.Values, got.Values, "options %+v", o)
	}
}

// TestDiaToCoo_LayoutAgnostic converts the same logical matrix stored
// under both physical arrangements and demands identical output.
func TestDiaToCoo_LayoutAgnostic(t *testing.T) {
	colSrc := tridiagonal(t, 12, layout.ColMajor)
	rowSrc := tridiagonal(t, 12, layout.RowMajor)

	var fromCol, fromRow formats.Coo
	require.NoError(t, convert.DiaToCoo(colSrc, &fromCol, convert.DefaultOptions()))
	require.NoError(t, convert.DiaToCoo(rowSrc, &fromRow, convert.DefaultOptions()))

	assert.Equal(t, fromCol.RowIndices, fromRow.RowIndices)
	assert.Equal(t, fromCol.ColIndices, fromRow.ColIndices)
	assert.Equal(t, fromCol.Values, fromRow.Values)
}

// TestDiaToCoo_RoundTripDense checks that DIA→COO→dense equals the dense
// reconstruction of the DIA source itself.
func TestDiaToCoo_RoundTripDense(t *testing.T) {
	src := tridiagonal(t, 9, layout.ColMajor)

	var dst formats.Coo
	require.NoError(t, convert.DiaToCoo(src, &dst, convert.DefaultOptions()))
	requireDenseEqual(t, src.ToDense(), dst.ToDense(), "DIA→COO round trip")
}

// TestDiaToCoo_Errors covers nil operands and malformed sources.
func TestDiaToCoo_Errors(t *testing.T) {
	var dst formats.Coo
	assert.ErrorIs(t, convert.DiaToCoo(nil, &dst, convert.DefaultOptions()), convert.ErrNilMatrix)

	src := singleDiagonal(t)
	assert.ErrorIs(t, convert.DiaToCoo(src, nil, convert.DefaultOptions()), convert.ErrNilMatrix)

	src.Values = src.Values[:3]
	err := convert.DiaToCoo(src, &dst, convert.DefaultOptions())
	assert.ErrorIs(t, err, convert.ErrMalformedSource)
}
