// Package matrix_test contains unit tests for the Dense matrix type.
package matrix_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/alumath/matrix"
	"github.com/stretchr/testify/require"
)

// TestNew_Dimensions verifies Rows/Cols/Dimensions/Shape on valid input.
func TestNew_Dimensions(t *testing.T) {
	t.Parallel()

	m, err := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	rows, cols := m.Dimensions()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, m.Shape())
	require.Equal(t, "2x3", m.Shape().String())
}

// TestNew_RandomShapes checks Dimensions() == (len(data), len(data[0])) for random rectangles.
func TestNew_RandomShapes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1337))
	var r, c, trial int
	for trial = 0; trial < 50; trial++ {
		r, c = 1+rng.Intn(7), 1+rng.Intn(7)
		data := RandRows(rng, r, c)
		m := MustNew(t, data)
		rows, cols := m.Dimensions()
		require.Equal(t, len(data), rows)
		require.Equal(t, len(data[0]), cols)
		require.Equal(t, data, m.Data())
	}
}

// TestNew_Invalid covers empty, empty-first-row and jagged inputs.
func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrEmpty},
		{"no rows", [][]float64{}, matrix.ErrEmpty},
		{"empty first row", [][]float64{{}}, matrix.ErrEmpty},
		{"empty first row, later rows", [][]float64{{}, {1}}, matrix.ErrEmpty},
		{"second row short", [][]float64{{1, 2}, {3}}, matrix.ErrJagged},
		{"last row long", [][]float64{{1}, {2}, {3, 4}}, matrix.ErrJagged},
		{"later row empty", [][]float64{{1, 2}, {}}, matrix.ErrJagged},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New(tc.data)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)

			var verr *matrix.ValidationError
			require.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
		})
	}
}

// TestNew_JaggedDetails checks that the error names the offending row and both lengths.
func TestNew_JaggedDetails(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]int{{1, 2}, {3, 4}, {5, 6, 7}, {8}})
	var verr *matrix.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, 2, verr.Row)
	require.Equal(t, 2, verr.Want)
	require.Equal(t, 3, verr.Got)
	require.Equal(t, "matrix: inconsistent row length at row 2: expected 2, got 3", err.Error())
}

// TestNew_EmptyMessage checks the empty-input message.
func TestNew_EmptyMessage(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]int{})
	require.EqualError(t, err, "matrix: matrix cannot be empty")
}

// TestNew_CopiesInput ensures later changes to the input do not leak into the matrix.
func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	data := [][]int{{1, 2}, {3, 4}}
	m := MustNew(t, data)
	data[0][0] = 99 // mutate caller-owned rows

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := m.Data()
	out[1][1] = -1 // mutate the returned copy
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 42
	v, _ = m.At(0, 1)
	require.Equal(t, 2, v)
}

// TestAtRow_OutOfRange ensures At() and Row() return ErrOutOfRange on invalid access.
func TestAtRow_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
}

// TestRender checks the fixed-width two-decimal grid format.
func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"ints",
			MustNew(t, [][]int{{1, 2}, {3, 4}}).Render(),
			"[    1.00     2.00]\n[    3.00     4.00]",
		},
		{
			"floats round and negatives",
			MustNew(t, [][]float64{{-1.005, 12345.678}}).Render(),
			"[   -1.00 12345.68]",
		},
		{
			"single cell",
			MustNew(t, [][]int8{{7}}).Render(),
			"[    7.00]",
		},
		{
			"wider than cell",
			MustNew(t, [][]int64{{123456789}}).Render(),
			"[123456789.00]",
		},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got, tc.name)
	}
}

// TestStringers checks fmt integration (%v uses Render, %#v the shape summary).
func TestStringers(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, m.Render(), fmt.Sprint(m))
	require.Equal(t, "Matrix(rows=2, cols=3)", fmt.Sprintf("%#v", m))
}

// TestEqual covers shape and value differences.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustNew(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, a.Equal(MustNew(t, [][]int{{1, 2}, {3, 4}})))
	require.False(t, a.Equal(MustNew(t, [][]int{{1, 2}, {3, 5}})))
	require.False(t, a.Equal(MustNew(t, [][]int{{1, 2, 3, 4}})))
	require.False(t, a.Equal(nil))

	var nilM *matrix.Dense[int]
	require.True(t, nilM.Equal(nil))
}

// TestIdentity checks the diagonal pattern and the n<1 guard.
func TestIdentity(t *testing.T) {
	t.Parallel()

	id := MustIdentity[int](t, 3)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Data())

	_, err := matrix.Identity[float64](0)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestConvert promotes integers to floats without touching the source.
func TestConvert(t *testing.T) {
	t.Parallel()

	ints := MustNew(t, [][]int{{1, -2}, {3, 4}})
	floats, err := matrix.Convert[float64](ints)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, -2}, {3, 4}}, floats.Data())
	require.Equal(t, ints.Shape(), floats.Shape())

	_, err = matrix.Convert[float64, int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestZeroValue ensures a Dense that skipped New is rejected, not panicked on.
func TestZeroValue(t *testing.T) {
	t.Parallel()

	var zero matrix.Dense[int]
	require.Equal(t, 0, zero.Rows())
	require.Equal(t, "", zero.Render())

	_, err := matrix.Multiply(&zero, MustNew(t, [][]int{{1}}))
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestNilReceiver ensures read accessors report a nil matrix as 0×0 instead of panicking.
func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense[float64]
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	rows, cols := m.Dimensions()
	require.Equal(t, []int{0, 0}, []int{rows, cols})
	require.Equal(t, matrix.Shape{}, m.Shape())
	require.Equal(t, "", m.Render())
	require.Equal(t, "", m.String())
	require.Equal(t, "Matrix(nil)", m.GoString())
	require.Nil(t, m.Data())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
