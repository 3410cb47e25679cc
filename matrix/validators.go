// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and methods minimal by delegating shape/nil/index checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly and errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDimensions ensures rows and cols are non-negative and that
// rows*cols fits in an int, so the buffer length always equals the shape.
// Zero is accepted; the Builder layers its own zero checks on top.
// Complexity: O(1).
func ValidateDimensions(rows, cols int) error {
	if rows < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDimensions: rows=%d", rows), ErrNegativeDimension)
	}
	if cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDimensions: cols=%d", cols), ErrNegativeDimension)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf(fmt.Sprintf("ValidateDimensions: %dx%d", rows, cols), ErrDimensionOverflow)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateIndex[T Number](m *Matrix[T], row, col int) error {
	if row < 0 || row >= m.r {
		return validatorErrorf("ValidateIndex: row", ErrOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return validatorErrorf("ValidateIndex: col", ErrOutOfBounds)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNotSquare otherwise.
// Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrNotSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Errors: ErrNilMatrix if either is nil, ErrShape on mismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShape)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShape)
	}

	return nil
}
