// Package lvgrid is a small, correctness-first numeric grid primitive.
//
// What is inside:
//
//	matrix/    generic Matrix[T] over any integer or float type: bounds-checked
//	           At/Set, FillWith, Identity, IsSquare, plus a single-use Builder
//	           that rejects zero-dimension shapes before any data exists.
//	examples/  a runnable walkthrough.
//
// Layout in one picture (2×3, row-major, offset = row*cols + col):
//
//	(0,0) (0,1) (0,2)       data[0] data[1] data[2]
//	(1,0) (1,1) (1,2)  ->   data[3] data[4] data[5]
//
// Not a linear-algebra library: export to gonum (matrix.ToGonum) for that.
//
//	go get github.com/katalvlaran/lvgrid/matrix
package lvgrid
