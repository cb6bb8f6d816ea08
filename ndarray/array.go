// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer addressed by the usual stride formula.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the DType invariant from a single place (coerce on every write).
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); Clone/AsType: O(size).

package ndarray

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAsType    = "AsType"
)

// arrayErrorf wraps a sentinel with a uniform "Array.<method>" context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a dense N-dimensional array in row-major order.
//   - shape holds the extent of every axis (zero extents are legal and yield empty arrays).
//   - data has exactly prod(shape) elements.
//   - dtype is the logical element type; every stored value is already coerced to it.
type Array struct {
	shape []int     // extents per axis, len == rank >= 1
	data  []float64 // contiguous row-major storage
	dtype DType     // logical element type
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// New creates a zero-filled array of the given dtype and shape.
//
// Implementation:
//   - Stage 1: validate dtype and shape (rank >= 1, no negative extent).
//   - Stage 2: allocate the zero-filled backing slice.
//
// Errors:
//   - ErrUnknownDType, ErrBadShape.
//
// Complexity:
//   - Time O(size), Space O(size).
func New(dtype DType, shape ...int) (*Array, error) {
	n, err := checkShape(dtype, shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	return &Array{shape: slices.Clone(shape), data: make([]float64, n), dtype: dtype}, nil
}

// FromSlice builds an array that owns a coerced copy of data.
//
// Errors:
//   - ErrUnknownDType, ErrBadShape, ErrDataLength when len(data) != prod(shape).
//
// Complexity:
//   - Time O(size), Space O(size).
func FromSlice(dtype DType, data []float64, shape ...int) (*Array, error) {
	n, err := checkShape(dtype, shape)
	if err != nil {
		return nil, arrayErrorf(ctxFromSlice, err)
	}
	if len(data) != n {
		return nil, arrayErrorf(ctxFromSlice, ErrDataLength)
	}

	buf := make([]float64, n)
	for i, v := range data {
		buf[i] = dtype.Coerce(v)
	}

	return &Array{shape: slices.Clone(shape), data: buf, dtype: dtype}, nil
}

// Fill returns a new array of the given shape where every element equals v.
func Fill(dtype DType, v float64, shape ...int) (*Array, error) {
	a, err := New(dtype, shape...)
	if err != nil {
		return nil, err
	}
	v = dtype.Coerce(v)
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// newUnchecked allocates an array for a shape already known to be valid.
func newUnchecked(dtype DType, shape []int) *Array {
	return &Array{shape: shape, data: make([]float64, product(shape)), dtype: dtype}
}

// Shape returns a copy of the extents of every axis.
func (a *Array) Shape() []int {
	if a == nil {
		return nil
	}
	return slices.Clone(a.shape)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	if a == nil {
		return 0
	}
	return len(a.shape)
}

// Dim returns the extent of one axis; negative axes count from the end.
// Returns ErrAxis when the axis does not exist.
func (a *Array) Dim(axis int) (int, error) {
	ax, err := NormalizeAxis(axis, a.Rank())
	if err != nil {
		return 0, err
	}
	return a.shape[ax], nil
}

// Size returns the number of elements.
func (a *Array) Size() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// DType returns the logical element type.
func (a *Array) DType() DType {
	if a == nil {
		return Float64
	}
	return a.dtype
}

// Data returns a copy of the row-major backing storage.
func (a *Array) Data() []float64 {
	if a == nil {
		return nil
	}
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// offset converts a multi-index into a flat offset.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[k] + i
	}

	return off, nil
}

// At returns the element at the given multi-index.
// Returns ErrOutOfRange for a wrong index count or any index outside bounds.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	if a == nil {
		return 0, arrayErrorf(ctxAt, ErrInvalidInput)
	}
	off, err := a.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("Array.%s%v: %w", ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set writes v (coerced to the array dtype) at the given multi-index.
// Set is meant for building arrays; library transforms never call it on inputs.
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	if a == nil {
		return arrayErrorf(ctxSet, ErrInvalidInput)
	}
	off, err := a.offset(idx)
	if err != nil {
		return fmt.Errorf("Array.%s%v: %w", ctxSet, idx, err)
	}
	a.data[off] = a.dtype.Coerce(v)

	return nil
}

// Clone returns a deep copy.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	return &Array{shape: slices.Clone(a.shape), data: a.Data(), dtype: a.dtype}
}

// AsType returns a copy converted to dtype d (values coerced).
// Returns ErrUnknownDType for an undeclared dtype.
func (a *Array) AsType(d DType) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(ctxAsType, ErrInvalidInput)
	}
	if !d.Valid() {
		return nil, arrayErrorf(ctxAsType, ErrUnknownDType)
	}
	out := newUnchecked(d, slices.Clone(a.shape))
	for i, v := range a.data {
		out.data[i] = d.Coerce(v)
	}

	return out, nil
}

// Equal reports whether a and b share dtype, shape and every element value.
// Two nil arrays are equal.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.dtype == b.dtype && slices.Equal(a.shape, b.shape) && floats.Equal(a.data, b.data)
}

// EqualApprox is Equal with an absolute-or-relative tolerance on values.
func EqualApprox(a, b *Array, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.dtype == b.dtype && slices.Equal(a.shape, b.shape) && floats.EqualApprox(a.data, b.data, tol)
}

// String implements fmt.Stringer with a compact header, e.g. "Array(uint8, [4 4 1])".
func (a *Array) String() string {
	if a == nil {
		return "Array(nil)"
	}
	var sb strings.Builder
	sb.WriteString("Array(")
	sb.WriteString(a.dtype.String())
	sb.WriteString(", ")
	sb.WriteString(fmt.Sprint(a.shape))
	sb.WriteString(")")

	return sb.String()
}

// ---------- shape helpers ----------

func checkShape(dtype DType, shape []int) (int, error) {
	if !dtype.Valid() {
		return 0, ErrUnknownDType
	}
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
	}

	return product(shape), nil
}

func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
