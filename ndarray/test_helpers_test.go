package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/stretchr/testify/require"
)

// ramp builds an array whose flat storage is 0, 1, 2, ... so that every
// element identifies its own row-major offset.
func ramp(t testing.TB, dtype ndarray.DType, shape ...int) *ndarray.Array {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	a, err := ndarray.FromSlice(dtype, data, shape...)
	require.NoError(t, err)

	return a
}

// at reads one element and fails the test on error.
func at(t testing.TB, a *ndarray.Array, idx ...int) float64 {
	t.Helper()
	v, err := a.At(idx...)
	require.NoError(t, err)

	return v
}
