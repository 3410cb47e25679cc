// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromRows_ToRows(t *testing.T) {
	in := [][]int{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(in)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 4, mustAt(t, m, 1, 0))
	require.Equal(t, 3, mustAt(t, m, 0, 2))

	in[0][0] = 99 // source is copied
	out := m.ToRows()
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, out)

	out[1][1] = -5 // result is a copy too
	require.Equal(t, 5, mustAt(t, m, 1, 1))
}

func TestFromRows_EmptyAndRagged(t *testing.T) {
	m, err := matrix.FromRows[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
	require.True(t, m.IsSquare())

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestFromRows_Guard(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromRows([][]float64{{1, math.NaN()}})
	require.NoError(t, err)
	v := mustAt(t, m, 0, 1)
	require.True(t, math.IsNaN(v))
}

func TestToGonum_MatchesLayout(t *testing.T) {
	m := mustNew[int](t, 2, 3)
	sequential(t, m)

	d, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	want := mat.NewDense(2, 3, []float64{0, 1, 2, 100, 101, 102})
	require.True(t, mat.Equal(want, d))
}

func TestToGonum_Identity(t *testing.T) {
	m, err := matrix.NewIdentity[float64](4)
	require.NoError(t, err)
	d, err := matrix.ToGonum(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDiagDense(4, []float64{1, 1, 1, 1}), d))
}

func TestToGonum_Errors(t *testing.T) {
	_, err := matrix.ToGonum(mustNew[int](t, 0, 3))
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.ToGonum[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_RoundTrip(t *testing.T) {
	src := mat.NewDense(3, 2, []float64{1.5, -2, 3, 4, 5, 6.25})
	m, err := matrix.FromGonum[float64](src)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 6.25, mustAt(t, m, 2, 1))

	back, err := matrix.ToGonum(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(src, back))

	// a transposed view is read through mat.Matrix, not the raw buffer
	mt, err := matrix.FromGonum[float64](src.T())
	require.NoError(t, err)
	require.Equal(t, 2, mt.Rows())
	require.Equal(t, -2.0, mustAt(t, mt, 1, 0))
}

func TestFromGonum_IntegerTruncation(t *testing.T) {
	src := mat.NewDense(1, 3, []float64{1.9, -1.9, 7})
	m, err := matrix.FromGonum[int](src)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, -1, 7}}, m.ToRows())

	_, err = matrix.FromGonum[int](mat.NewDense(1, 1, []float64{math.Inf(1)}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFromGonum_ValueRange(t *testing.T) {
	one := func(v float64) *mat.Dense { return mat.NewDense(1, 1, []float64{v}) }

	_, err := matrix.FromGonum[int8](one(1e20))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	require.Contains(t, err.Error(), "FromGonum(0,0)")

	_, err = matrix.FromGonum[int8](one(128))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	_, err = matrix.FromGonum[uint8](one(-1))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	_, err = matrix.FromGonum[uint8](one(300))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	_, err = matrix.FromGonum[int64](one(math.MaxFloat64))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	_, err = matrix.FromGonum[float32](one(1e300))
	require.ErrorIs(t, err, matrix.ErrValueRange)

	// the failing element is reported by position
	_, err = matrix.FromGonum[uint8](mat.NewDense(2, 2, []float64{1, 2, 3, 256}))
	require.ErrorIs(t, err, matrix.ErrValueRange)
	require.Contains(t, err.Error(), "FromGonum(1,1)")

	// boundary values and truncation into range are accepted
	m, err := matrix.FromGonum[int8](mat.NewDense(1, 3, []float64{127, -128.9, 127.5}))
	require.NoError(t, err)
	require.Equal(t, [][]int8{{127, -128, 127}}, m.ToRows())

	u, err := matrix.FromGonum[uint8](mat.NewDense(1, 2, []float64{255, -0.5}))
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{255, 0}}, u.ToRows())

	f, err := matrix.FromGonum[float32](one(math.MaxFloat32))
	require.NoError(t, err)
	require.Equal(t, float32(math.MaxFloat32), mustAt(t, f, 0, 0))
}

func TestFromGonum_GuardAndNil(t *testing.T) {
	src := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err := matrix.FromGonum[float64](src, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromGonum[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.FromGonum[float64](&mat.Dense{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}
