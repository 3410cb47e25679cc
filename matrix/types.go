// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element-type bound and the Matrix/Builder
// shapes. Errors and options live in errors.go and options.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element-type bound: every real integer or floating-point type.
// Each such type has an additive identity T(0), a multiplicative identity
// T(1), and value semantics (copies never alias).
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a two-dimensional grid of T backed by one flat buffer.
//   - r,c hold dimensions (rows, cols); zero is legal, negative never is.
//   - data has length r*c at all times, row-major (offset = row*c + col).
//   - opts is the policy resolved at construction; Clone preserves it.
//
// The zero value is a legal 0×0 matrix.
type Matrix[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
	opts Options
}

// Builder stages a shape and optional contents, then produces a Matrix once.
// A Builder is single-use: after Finalize it is spent.
type Builder[T Number] struct {
	cols, rows int      // staged dimensions; 0 means "not set"
	elements   []T      // staged row-major contents; nil when not staged
	opts       []Option // applied to the produced Matrix
	spent      bool     // set by the first Finalize call
}
