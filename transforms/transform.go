// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/jointaug/ndarray"
)

// Transform maps one pipeline Value to another. r is the random stream to
// draw from; nil selects the process-wide generator. Implementations must not
// mutate the arrays held by v.
type Transform interface {
	Apply(r *rand.Rand, v Value) (Value, error)
}

// ArrayTransform is the single-array form of a transform. Every built-in
// geometric transform implements both interfaces; its Apply accepts only an
// array Value.
type ArrayTransform interface {
	ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error)
}

// Func adapts an ordinary function to Transform.
type Func func(r *rand.Rand, v Value) (Value, error)

// Apply calls f.
func (f Func) Apply(r *rand.Rand, v Value) (Value, error) { return f(r, v) }

// ArrayFunc adapts a single-array function to both Transform and ArrayTransform.
type ArrayFunc func(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error)

// ApplyArray calls f.
func (f ArrayFunc) ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	return f(r, a)
}

// Apply unwraps v, calls f and wraps the result.
func (f ArrayFunc) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("ArrayFunc", f, r, v)
}

// Lambda wraps a deterministic array function (for example functional.HFlip)
// as a Transform.
func Lambda(fn func(*ndarray.Array) (*ndarray.Array, error)) ArrayFunc {
	return func(_ *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) { return fn(a) }
}

// applyArray is the shared Apply body of every ArrayTransform: require an
// array Value, run the transform, wrap the result.
func applyArray(op string, t ArrayTransform, r *rand.Rand, v Value) (Value, error) {
	a, err := v.Array()
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", op, err)
	}
	out, err := t.ApplyArray(r, a)
	if err != nil {
		return Value{}, err
	}

	return Single(out), nil
}

// Compile-time assertions.
var (
	_ Transform      = Func(nil)
	_ Transform      = ArrayFunc(nil)
	_ ArrayTransform = ArrayFunc(nil)
)
