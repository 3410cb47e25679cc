// SPDX-License-Identifier: MIT

// Package matrix - flat storage & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with ONE index formula: row*cols + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the shape invariant len(data) == rows*cols from construction onwards.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); shape queries: O(1).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxIdentity = "Identity" // method tag used in error wrappers
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to T(0).
// MAIN DESCRIPTION:
//   - Direct constructor. Zero dimensions are legal here (a 0×N or N×0
//     matrix has an empty buffer); only the Builder forbids them.
//
// Implementation:
//   - Stage 1: reject negative dimensions.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//   - Stage 3: resolve options.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: numeric policy (see options.go).
//
// Returns:
//   - *Matrix[T]: newly allocated matrix.
//
// Errors:
//   - ErrNegativeDimension (wraps ErrShape) when rows<0 or cols<0.
//   - ErrDimensionOverflow (wraps ErrShape) when rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, methodErrorf("New", err)
	}

	return &Matrix[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols), // make() zero-fills deterministically
		opts: gatherOptions(opts...),
	}, nil
}

// Shape queries treat a nil receiver as 0×0.

// Rows returns the row count. No side effects.
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. No side effects.
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Len returns the number of stored elements, always Rows()*Cols().
func (m *Matrix[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// IsSquare reports whether Rows() == Cols(). Derived on every call.
func (m *Matrix[T]) IsSquare() bool { return m.Rows() == m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfBounds.
// This is the ONLY place the addressing formula is spelled out for
// checked access; every reader and writer goes through it.
//
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	return offset(m.c, row, col), nil
}

// offset is the row-major formula row*cols + col, unchecked.
// The diagonal element i therefore sits at i*cols + i.
func offset(cols, row, col int) int { return row*cols + col }

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range or nil receiver; returns sentinel errors.
//
// Errors:
//   - ErrOutOfBounds when either index is outside [0,Rows()) × [0,Cols()).
//   - ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write; the side effect is limited to that single slot.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfBounds for bounds; ErrNaNInf under the guard; ErrNilMatrix.
//     On error nothing is written.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && isNonFinite(float64(v)) {
		return matrixErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}
