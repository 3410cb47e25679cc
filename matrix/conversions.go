// SPDX-License-Identifier: MIT

// Package matrix - converters to and from nested slices and gonum.
//
// All converters copy; no result shares a buffer with its source.
// Nested slices are indexed [row][col], matching the row-major layout.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromRows builds a len(rows)×len(rows[0]) matrix from nested slices.
// An empty outer slice yields a 0×0 matrix.
// Errors: ErrRagged (wraps ErrShape) when rows differ in length;
// ErrNaNInf under the guard.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	m, err := New[T](r, c, opts...)
	if err != nil {
		return nil, methodErrorf("FromRows", err)
	}
	var j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.opts.validateNaNInf && isNonFinite(float64(rows[i][j])) {
				return nil, matrixErrorf("FromRows", i, j, ErrNaNInf)
			}
			m.data[offset(c, i, j)] = rows[i][j]
		}
	}

	return m, nil
}

// ToRows returns an independent [row][col] copy of the contents; nil for a nil receiver.
func (m *Matrix[T]) ToRows() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[offset(m.c, i, 0):offset(m.c, i, 0)+m.c])
		out[i] = row
	}

	return out
}

// ToGonum exports m as a *mat.Dense, converting each element to float64.
// Gonum has no empty Dense, so a matrix with a zero dimension fails.
// Errors: ErrNilMatrix; ErrShape for zero-sized m.
// Complexity: O(r*c).
func ToGonum[T Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, methodErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", m.r, m.c, ErrShape)
	}
	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}

	// gonum's Dense is row-major too, so the flat buffer maps one-to-one.
	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum imports any gonum matrix, converting each element with T(v).
// Integer T truncates toward zero, as a Go conversion does; a finite value
// outside T's range fails with ErrValueRange instead of wrapping.
// Errors: ErrNilMatrix for a nil src; ErrNaNInf when a value is non-finite
// and either the guard is on or T is an integer type (no integer holds NaN/Inf).
// Complexity: O(r*c).
func FromGonum[T Number](src mat.Matrix, opts ...Option) (*Matrix[T], error) {
	if src == nil {
		return nil, methodErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims() // a zero-value *mat.Dense reports 0,0

	m, err := New[T](r, c, opts...)
	if err != nil {
		return nil, methodErrorf("FromGonum", err)
	}
	rejectNonFinite := m.opts.validateNaNInf || isIntegerType[T]()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if rejectNonFinite && isNonFinite(v) {
				return nil, matrixErrorf("FromGonum", i, j, ErrNaNInf)
			}
			if !representable[T](v) {
				return nil, matrixErrorf("FromGonum", i, j, ErrValueRange)
			}
			m.data[offset(c, i, j)] = T(v)
		}
	}

	return m, nil
}

// representable reports whether a finite v survives T(v): for integer T the
// truncated value must round-trip exactly, for float T it must not overflow.
func representable[T Number](v float64) bool {
	if isNonFinite(v) {
		return true // handled by the NaN/Inf policy
	}
	t := T(v)
	if isIntegerType[T]() {
		return float64(t) == math.Trunc(v)
	}

	return !isNonFinite(float64(t))
}

// isIntegerType reports whether T drops the fraction on conversion.
func isIntegerType[T Number]() bool {
	half := 0.5

	return T(half) == 0
}
