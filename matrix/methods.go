// SPDX-License-Identifier: MIT

// Package matrix - bulk mutation, identity, copies and debug output.
//
// Every loop here walks the buffer in row-major order through offset(),
// so traversal order and the addressing formula cannot drift apart.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// dumpConfig renders Dump output without pointer addresses so that two dumps
// of equal matrices are byte-identical.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// FillWith overwrites every element with v and returns the receiver.
// Never fails; a zero-sized matrix stays empty and a nil receiver stays nil.
// Complexity: O(r*c).
func (m *Matrix[T]) FillWith(v T) *Matrix[T] {
	if m == nil {
		return nil
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m
}

// Identity turns a square receiver into the identity matrix.
// MAIN DESCRIPTION:
//   - In-place identity: T(0) everywhere, then T(1) on the diagonal.
//
// Implementation:
//   - Stage 1: ValidateSquare; on failure return before touching the buffer.
//   - Stage 2: FillWith(0).
//   - Stage 3: walk the diagonal (i,i) for i in [0, Cols()), offset i*c + i.
//
// Behavior highlights:
//   - A non-square receiver is left unmodified.
//   - A 0×0 receiver is square and stays empty.
//
// Returns:
//   - the receiver, for chaining.
//
// Errors:
//   - ErrNotSquare (wraps ErrShape); ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Identity() (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, methodErrorf("Matrix."+ctxIdentity, err)
	}
	m.FillWith(T(0))
	for i := 0; i < m.c; i++ {
		m.data[offset(m.c, i, i)] = T(1)
	}

	return m, nil
}

// NewIdentity allocates an n×n identity matrix.
// Errors: ErrNegativeDimension when n < 0.
// Complexity: O(n²).
func NewIdentity[T Number](n int, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, methodErrorf("NewIdentity", err)
	}

	return m.Identity()
}

// Clone returns a deep copy (new buffer, same options).
// Mutations on the copy never reach the original. Clone of nil is nil.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// Equal reports whether other has the same shape and every pair of elements
// differs by at most the receiver's epsilon (exact by default).
// A nil argument or receiver is never equal to anything.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if ValidateSameShape(m, other) != nil {
		return false
	}
	eps := m.opts.eps
	for i := range m.data {
		if m.data[i] == other.data[i] {
			continue
		}
		if eps == 0 || !(math.Abs(float64(m.data[i])-float64(other.data[i])) <= eps) {
			return false
		}
	}

	return true
}

// Do visits each element (row,col) in row-major order and calls f(row,col,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Matrix[T]) Do(f func(row, col int, v T) bool) {
	if m == nil {
		return
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[offset(m.c, i, j)]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(row,col,v).
// Implementation:
//   - Stage 1: compute every new value into a scratch buffer, enforcing the
//     numeric policy.
//   - Stage 2: copy the scratch buffer back only when all values passed.
//
// Behavior highlights:
//   - All-or-nothing: on ErrNaNInf the receiver is untouched.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Apply(f func(row, col int, v T) T) error {
	if err := ValidateNotNil(m); err != nil {
		return methodErrorf("Matrix."+ctxApply, err)
	}
	next := make([]T, len(m.data))
	var i, j, off int
	var nv T
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = offset(m.c, i, j)
			nv = f(i, j, m.data[off])
			if m.opts.validateNaNInf && isNonFinite(float64(nv)) {
				return matrixErrorf(ctxApply, i, j, ErrNaNInf)
			}
			next[off] = nv
		}
	}
	copy(m.data, next)

	return nil
}

// String renders rows as lines of comma-separated values, e.g. "[1, 0]\n[0, 1]\n".
// Intended for logs and debugging; no compatibility contract.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[offset(m.c, i, j)])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Dump returns a deep debug dump of the shape and the flat buffer.
func (m *Matrix[T]) Dump() string {
	if m == nil {
		return dumpConfig.Sdump(m)
	}

	return dumpConfig.Sdump(struct {
		Rows, Cols int
		Data       []T
	}{m.r, m.c, m.data})
}
