// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures so tests read as scenarios.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew ALLOCATES a rows×cols matrix or fails the test.
func mustNew[T matrix.Number](t *testing.T, rows, cols int, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](rows, cols, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)

	return m
}

// mustAt reads (row,col) or fails the test.
func mustAt[T matrix.Number](t *testing.T, m *matrix.Matrix[T], row, col int) T {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}

// sequential fills m so that element (i,j) holds i*100 + j.
// Distinct values per axis make an accidental row/column swap visible.
func sequential(t *testing.T, m *matrix.Matrix[int]) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, i*100+j))
		}
	}
}

// snapshot copies every element into a [row][col] grid for before/after checks.
func snapshot[T matrix.Number](t *testing.T, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j] = mustAt(t, m, i, j)
		}
	}

	return out
}
