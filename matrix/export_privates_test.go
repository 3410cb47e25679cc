// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the internal options snapshot.
//
// Purpose:
//   - Expose a read-only view of resolved Options to matrix_test without
//     widening the production API. Compiled only with tests.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Eps            float64
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, Eps: o.eps}
}

// GatherOptionsSnapshot_TestOnly resolves opts the way constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// MatrixOptionsSnapshot_TestOnly returns the options stored on m.
func MatrixOptionsSnapshot_TestOnly[T Number](m *Matrix[T]) OptionsSnapshot {
	return snapshotOf(m.opts)
}

// RawData_TestOnly exposes the flat buffer so tests can pin the layout.
func RawData_TestOnly[T Number](m *Matrix[T]) []T { return m.data }

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
