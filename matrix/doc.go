// Package matrix provides a generic, bounds-checked two-dimensional numeric
// container.
//
// The package provides:
//
//   - Matrix[T]: a rows×cols grid over any integer or floating-point type,
//     stored in one flat row-major buffer. The element (row, col) lives at
//     offset row*Cols() + col; the diagonal element i at i*Cols() + i. This
//     formula is the single addressing convention for every read and write.
//   - Builder[T]: staged construction that validates shape before any matrix
//     exists and is spent after one Finalize call.
//   - Converters to and from [][]T and gonum's *mat.Dense.
//
// Errors are sentinels checked with errors.Is: ErrOutOfBounds for bad
// coordinates, ErrShape (and the more specific ErrNotSquare, ErrZeroRows,
// ErrZeroColumns, ...) for bad shapes. Nothing in the package panics on
// caller input: methods on a nil *Matrix either report ErrNilMatrix or
// behave as on an empty 0×0 matrix.
//
// A Matrix is not safe for concurrent mutation. Guard it with a mutex or give
// each goroutine its own Clone.
//
// It is deliberately not a linear-algebra library: there is no
// multiplication, transpose or decomposition. Export to gonum for those.
package matrix
