package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsemat/formats"
	"github.com/katalvlaran/sparsemat/layout"
)

// singleDiagonal builds the canonical 4×4 fixture: one main diagonal,
// pitch 4, values 1..4.
func singleDiagonal(t *testing.T) *formats.Dia {
	t.Helper()
	m, err := formats.NewDia(4, 4, 4, []int{0}, 4, layout.ColMajor)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, m.SetValue(i, 0, float64(i+1)))
	}

	return m
}

// tridiagonal builds an n×n tridiagonal DIA matrix (offsets -1, 0, 1) with
// 2 on the main diagonal and -1 on both neighbors, pitch n.
func tridiagonal(t *testing.T, n int, order layout.Order) *formats.Dia {
	t.Helper()
	m, err := formats.NewDia(n, n, 3*n-2, []int{-1, 0, 1}, n, order)
	require.NoError(t, err)
	for row := 0; row < n; row++ {
		require.NoError(t, m.SetValue(row, 0, -1)) // sub-diagonal; row 0 slot is padding
		require.NoError(t, m.SetValue(row, 1, 2))
		require.NoError(t, m.SetValue(row, 2, -1)) // super-diagonal; last row slot is padding
	}

	return m
}

// requireDenseEqual fails the test when two dense reconstructions differ.
func requireDenseEqual(t *testing.T, want, got mat.Matrix, msg string) {
	t.Helper()
	require.True(t, mat.Equal(want, got), "%s:\nwant:\n%v\ngot:\n%v",
		msg, mat.Formatted(want), mat.Formatted(got))
}
