// Package parmul_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the multiplication tests.
//   - Keep all fills seeded so every assertion is reproducible.
package parmul_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmul"
	"github.com/stretchr/testify/require"
)

// mustMatrix creates a rows×cols matrix or fails the test immediately.
func mustMatrix(tb testing.TB, rows, cols int) *parmul.Matrix {
	tb.Helper()

	m, err := parmul.NewMatrix(rows, cols) // construct the fixture
	require.NoError(tb, err)               // dimensions in tests are always valid

	return m
}

// fillSeeded fills m from a deterministic source derived from seed.
func fillSeeded(tb testing.TB, m *parmul.Matrix, seed int64) {
	tb.Helper()

	require.NoError(tb, m.Fill(rand.New(rand.NewSource(seed)))) // deterministic fill
}

// fromRows builds a matrix from explicit row slices.
func fromRows(tb testing.TB, rows [][]int) *parmul.Matrix {
	tb.Helper()

	m := mustMatrix(tb, len(rows), len(rows[0])) // shape taken from the literal
	for i, row := range rows {
		require.Len(tb, row, m.Cols()) // literals must be rectangular
		for j, v := range row {
			require.NoError(tb, m.Set(i, j, v)) // populate each cell
		}
	}

	return m
}

// requireEqualMatrices asserts two matrices agree in shape and cell for cell.
func requireEqualMatrices(tb testing.TB, want, got *parmul.Matrix) {
	tb.Helper()

	require.Equal(tb, want.Rows(), got.Rows()) // row counts must match
	require.Equal(tb, want.Cols(), got.Cols()) // column counts must match

	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j) // expected cell
			require.NoError(tb, err)
			gv, err := got.At(i, j) // actual cell
			require.NoError(tb, err)
			require.Equal(tb, wv, gv, "cell (%d,%d) differs", i, j)
		}
	}
}

// identity builds an n×n identity-valued matrix (1 on the diagonal, 0 elsewhere).
func identity(tb testing.TB, n int) *parmul.Matrix {
	tb.Helper()

	m := mustMatrix(tb, n, n) // all zeros on construction
	for i := 0; i < n; i++ {
		require.NoError(tb, m.Set(i, i, 1)) // place the diagonal
	}

	return m
}
