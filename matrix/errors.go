// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on caller-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON CLASSES
// ---------------
// Two error classes exist: ErrOutOfBounds (bad coordinate) and ErrShape (bad
// shape or staging). Specific shape sentinels wrap ErrShape, so callers may
// branch on the class or on the precise cause:
//
//	errors.Is(err, ErrShape)     // any shape violation
//	errors.Is(err, ErrNotSquare) // only the identity precondition
//
// Call sites attach method context with %w; the sentinel survives wrapping.

var (
	// ErrOutOfBounds indicates that a row or column index is outside the
	// matrix extent. At/Set MUST return this, not panic.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShape is the class of every shape violation.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrNotSquare signals that a square matrix was required but the receiver wasn't.
	ErrNotSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrZeroColumns is returned by Builder.Finalize when no columns were staged.
	ErrZeroColumns = fmt.Errorf("%w: columns cannot be zero", ErrShape)

	// ErrZeroRows is returned by Builder.Finalize when no rows were staged.
	ErrZeroRows = fmt.Errorf("%w: rows cannot be zero", ErrShape)

	// ErrNegativeDimension signals a dimension below zero.
	ErrNegativeDimension = fmt.Errorf("%w: dimension cannot be negative", ErrShape)

	// ErrDimensionOverflow signals a shape whose element count rows*cols
	// does not fit in an int.
	ErrDimensionOverflow = fmt.Errorf("%w: rows*cols overflows int", ErrShape)

	// ErrElementCount signals staged or imported contents whose length
	// differs from rows*cols.
	ErrElementCount = fmt.Errorf("%w: element count does not match rows*cols", ErrShape)

	// ErrRagged signals a [][]T input whose rows differ in length.
	ErrRagged = fmt.Errorf("%w: rows have different lengths", ErrShape)

	// ErrNaNInf signals a NaN or ±Inf value under an enabled numeric guard.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrValueRange signals an imported value that the element type cannot
	// represent (e.g. 1e20 into int8).
	ErrValueRange = errors.New("matrix: value out of range for element type")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBuilderSpent is returned by Finalize on a builder that was already finalized.
	ErrBuilderSpent = errors.New("matrix: builder already finalized")
)

// matrixErrorf wraps err with a uniform "Matrix.<method>(row,col)" context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// methodErrorf wraps err with a coordinate-free method context.
func methodErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
