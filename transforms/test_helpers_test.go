package transforms_test

import (
	"testing"

	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/katalvlaran/jointaug/transforms"
	"github.com/stretchr/testify/require"
)

// ramp builds an array whose flat storage is offset, offset+1, ...
func ramp(t testing.TB, dtype ndarray.DType, offset float64, shape ...int) *ndarray.Array {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = offset + float64(i)
	}
	a, err := ndarray.FromSlice(dtype, data, shape...)
	require.NoError(t, err)

	return a
}

// arrayOf unwraps a Single value.
func arrayOf(t testing.TB, v transforms.Value) *ndarray.Array {
	t.Helper()
	a, err := v.Array()
	require.NoError(t, err)

	return a
}

// flat lists every array held by v.
func flat(t testing.TB, v transforms.Value) []*ndarray.Array {
	t.Helper()
	arrays, err := v.Flatten()
	require.NoError(t, err)

	return arrays
}

// mustTransform panics when a constructor returns an error.
func mustTransform[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
