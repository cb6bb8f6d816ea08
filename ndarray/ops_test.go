package ndarray_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeAxis covers positive, negative and invalid axes.
func TestNormalizeAxis(t *testing.T) {
	ax, err := ndarray.NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)

	ax, err = ndarray.NormalizeAxis(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, ax)

	_, err = ndarray.NormalizeAxis(3, 3)
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = ndarray.NormalizeAxis(-4, 3)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

// TestSliceAxisChannels selects a channel window of an HWC array.
func TestSliceAxisChannels(t *testing.T) {
	a := ramp(t, ndarray.Float64, 2, 2, 4) // channel c at (y,x) = (y*2+x)*4 + c
	s, err := a.SliceAxis(-1, ndarray.NewRange(1, 3))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2}, s.Shape())
	require.Equal(t, []float64{1, 2, 5, 6, 9, 10, 13, 14}, s.Data())
}

// TestSliceAxisRows selects rows with a stride and checks independence.
func TestSliceAxisRows(t *testing.T) {
	a := ramp(t, ndarray.Float64, 4, 2)
	s, err := a.SliceAxis(0, ndarray.NewStepRange(ndarray.Open, ndarray.Open, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4, 5}, s.Data())

	require.NoError(t, s.Set(-1, 0, 0))
	require.Equal(t, 0.0, at(t, a, 0, 0), "slice must not alias the source")
}

// TestSliceAxisTruncates follows Python semantics for out-of-range windows.
func TestSliceAxisTruncates(t *testing.T) {
	a := ramp(t, ndarray.Uint8, 3, 3, 1)
	s, err := a.SliceAxis(1, ndarray.NewRange(2, 10))
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 1}, s.Shape())

	e, err := a.SliceAxis(0, ndarray.NewRange(5, 8))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 1}, e.Shape())
	require.Equal(t, 0, e.Size())
}

// TestSliceAxisKeepsUnitAxes checks that size-1 results keep every axis.
func TestSliceAxisKeepsUnitAxes(t *testing.T) {
	a := ramp(t, ndarray.Uint8, 2, 2, 3)
	c, err := a.SliceAxis(-1, ndarray.NewRange(2, 3))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 1}, c.Shape())
	require.Equal(t, []float64{2, 5, 8, 11}, c.Data())

	one := ramp(t, ndarray.Float64, 1, 1, 1)
	s, err := one.SliceAxis(0, ndarray.All())
	require.NoError(t, err)
	require.Equal(t, 3, s.Rank())
	require.Equal(t, []int{1, 1, 1}, s.Shape())
}

// TestSliceAxisNegativeStep walks an axis backwards.
func TestSliceAxisNegativeStep(t *testing.T) {
	a := ramp(t, ndarray.Int32, 6, 1)
	s, err := a.SliceAxis(0, ndarray.NewStepRange(5, 0, -1))
	require.NoError(t, err)
	require.Equal(t, []int{5, 1}, s.Shape())
	require.Equal(t, []float64{5, 4, 3, 2, 1}, s.Data())
}

// TestSliceAxisErrors covers axis and range validation.
func TestSliceAxisErrors(t *testing.T) {
	a := ramp(t, ndarray.Float64, 2, 2)
	_, err := a.SliceAxis(2, ndarray.All())
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = a.SliceAxis(0, ndarray.Range{})
	require.ErrorIs(t, err, ndarray.ErrInvalidRange)

	var nilArr *ndarray.Array
	_, err = nilArr.SliceAxis(0, ndarray.All())
	require.ErrorIs(t, err, ndarray.ErrInvalidInput)
}

// TestConcatChannels joins two HWC arrays on the channel axis.
func TestConcatChannels(t *testing.T) {
	a, err := ndarray.Fill(ndarray.Float64, 1, 2, 2, 1)
	require.NoError(t, err)
	b, err := ndarray.Fill(ndarray.Float64, 2, 2, 2, 2)
	require.NoError(t, err)

	c, err := ndarray.Concat(-1, a, b)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{2, 2, 3}, c.Shape()); diff != "" {
		t.Fatalf("shape mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []float64{1, 2, 2, 1, 2, 2, 1, 2, 2, 1, 2, 2}, c.Data())
}

// TestConcatRows joins on the leading axis (pure append of buffers).
func TestConcatRows(t *testing.T) {
	a := ramp(t, ndarray.Float64, 1, 3)
	b := ramp(t, ndarray.Float64, 2, 3)
	c, err := ndarray.Concat(0, a, b)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, c.Shape())
	require.Equal(t, []float64{0, 1, 2, 0, 1, 2, 3, 4, 5}, c.Data())
}

// TestConcatZeroExtent accepts an empty part and leaves the inputs untouched.
func TestConcatZeroExtent(t *testing.T) {
	empty, err := ndarray.New(ndarray.Float64, 2, 2, 0)
	require.NoError(t, err)
	b := ramp(t, ndarray.Float64, 2, 2, 1)

	c, err := ndarray.Concat(-1, empty, b)
	require.NoError(t, err)
	require.True(t, ndarray.Equal(b, c))
	require.Equal(t, []int{2, 2, 0}, empty.Shape())
	require.Equal(t, []int{2, 2, 1}, b.Shape())

	r := ramp(t, ndarray.Float64, 1, 3)
	rows, err := ndarray.Concat(0, r, r)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, rows.Shape())
	require.Equal(t, []int{1, 3}, r.Shape())
}

// TestConcatErrors covers the error priority: nil -> axis -> dtype -> shape.
func TestConcatErrors(t *testing.T) {
	a := ramp(t, ndarray.Float64, 2, 2, 1)
	_, err := ndarray.Concat(-1)
	require.ErrorIs(t, err, ndarray.ErrInvalidInput)

	_, err = ndarray.Concat(-1, a, nil)
	require.ErrorIs(t, err, ndarray.ErrInvalidInput)

	_, err = ndarray.Concat(5, a, a)
	require.ErrorIs(t, err, ndarray.ErrAxis)

	_, err = ndarray.Concat(-1, a, ramp(t, ndarray.Uint8, 2, 2, 1))
	require.ErrorIs(t, err, ndarray.ErrTypeMismatch)

	_, err = ndarray.Concat(-1, a, ramp(t, ndarray.Float64, 2, 3, 1))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.Concat(-1, a, ramp(t, ndarray.Float64, 2, 2))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestReverseInvolution checks reversing twice restores the array.
func TestReverseInvolution(t *testing.T) {
	a := ramp(t, ndarray.Float64, 3, 4, 2)
	for _, axis := range []int{0, 1, 2, -1} {
		r, err := a.Reverse(axis)
		require.NoError(t, err)
		require.False(t, ndarray.Equal(a, r))
		rr, err := r.Reverse(axis)
		require.NoError(t, err)
		require.True(t, ndarray.Equal(a, rr), "axis %d", axis)
	}
}

// TestReverseWidth pins the element order for a width reversal.
func TestReverseWidth(t *testing.T) {
	a := ramp(t, ndarray.Float64, 2, 3)
	r, err := a.Reverse(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 1, 0, 5, 4, 3}, r.Data())

	_, err = a.Reverse(2)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

// TestMapLanes doubles every lane length by repetition and checks coercion.
func TestMapLanes(t *testing.T) {
	a := ramp(t, ndarray.Uint8, 2, 2)
	out, err := a.MapLanes(1, 4, func(dst, src []float64) error {
		for i := range dst {
			dst[i] = src[i/2] + 0.5
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, out.Shape())
	// 0.5 and 2.5 round down to even; 1.5 and 3.5 round up.
	require.Equal(t, []float64{0, 0, 2, 2, 2, 2, 4, 4}, out.Data())

	_, err = a.MapLanes(0, -1, func(dst, src []float64) error { return nil })
	require.ErrorIs(t, err, ndarray.ErrInvalidInput)
	_, err = a.MapLanes(0, 2, nil)
	require.ErrorIs(t, err, ndarray.ErrInvalidInput)
}

// TestMapLanesError stops at the first failing lane and returns its error.
func TestMapLanesError(t *testing.T) {
	errLane := errors.New("lane failed")
	a := ramp(t, ndarray.Float64, 3, 2)
	calls := 0
	out, err := a.MapLanes(0, 3, func(dst, src []float64) error {
		calls++
		return errLane
	})
	require.ErrorIs(t, err, errLane)
	require.Nil(t, out)
	require.Equal(t, 1, calls)
}
