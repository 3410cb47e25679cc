// SPDX-License-Identifier: MIT
// Package matrix - staged, validated construction.
//
// Purpose:
//   - Accumulate shape (and optionally contents) before any Matrix exists,
//     so a zero-dimension matrix is never produced through this path.
//
// Policy & Contracts:
//   - Setters only record; validation happens in Finalize.
//   - Finalize is single-use. The first call spends the builder whether or not
//     it succeeds; later calls return ErrBuilderSpent and setters are ignored.

package matrix

import "fmt"

const ctxFinalize = "Builder.Finalize"

// NewBuilder returns an empty builder (0 columns, 0 rows, no contents).
// opts are applied to the produced Matrix.
func NewBuilder[T Number](opts ...Option) *Builder[T] {
	return &Builder[T]{opts: opts}
}

// SetColumns stages the column count. Chainable; no validation here.
func (b *Builder[T]) SetColumns(n int) *Builder[T] {
	if !b.spent {
		b.cols = n
	}

	return b
}

// SetRows stages the row count. Chainable; no validation here.
func (b *Builder[T]) SetRows(n int) *Builder[T] {
	if !b.spent {
		b.rows = n
	}

	return b
}

// SetElements stages initial contents in row-major order.
// vals is copied, so later changes to the caller's slice are not observed.
// A nil slice clears previously staged contents.
func (b *Builder[T]) SetElements(vals []T) *Builder[T] {
	if b.spent {
		return b
	}
	if vals == nil {
		b.elements = nil
	} else {
		b.elements = append(make([]T, 0, len(vals)), vals...)
	}

	return b
}

// Finalize validates the staged configuration and produces the Matrix.
// MAIN DESCRIPTION:
//   - The only construction path that rejects degenerate shapes up front.
//
// Implementation:
//   - Stage 1: mark the builder spent (a second call is rejected).
//   - Stage 2: validate, in order: columns != 0, rows != 0, no negatives,
//     staged element count, staged element values under the numeric guard.
//   - Stage 3: allocate and copy staged contents (or leave zeros).
//
// Returns:
//   - *Matrix[T] owning a fresh buffer of cols*rows elements.
//
// Errors:
//   - ErrBuilderSpent on a second call.
//   - ErrZeroColumns, ErrZeroRows, ErrNegativeDimension, ErrElementCount (all wrap ErrShape).
//   - ErrNaNInf when a staged element is non-finite and the guard is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (b *Builder[T]) Finalize() (*Matrix[T], error) {
	if b.spent {
		return nil, methodErrorf(ctxFinalize, ErrBuilderSpent)
	}
	b.spent = true

	if b.cols == 0 {
		return nil, methodErrorf(ctxFinalize, ErrZeroColumns)
	}
	if b.rows == 0 {
		return nil, methodErrorf(ctxFinalize, ErrZeroRows)
	}

	m, err := New[T](b.rows, b.cols, b.opts...)
	if err != nil {
		return nil, methodErrorf(ctxFinalize, err)
	}

	if b.elements != nil {
		if len(b.elements) != m.Len() {
			return nil, fmt.Errorf("%s: got %d elements for %dx%d: %w",
				ctxFinalize, len(b.elements), b.rows, b.cols, ErrElementCount)
		}
		if m.opts.validateNaNInf {
			for i, v := range b.elements {
				if isNonFinite(float64(v)) {
					return nil, fmt.Errorf("%s: element %d: %w", ctxFinalize, i, ErrNaNInf)
				}
			}
		}
		copy(m.data, b.elements)
		b.elements = nil // release the staging copy; the matrix owns its own buffer
	}

	return m, nil
}
