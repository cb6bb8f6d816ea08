// SPDX-License-Identifier: MIT

// Package ndarray - axis operations.
//
// Every operation here views the array as (outer, n, inner) around the chosen
// axis: outer = prod(shape[:axis]), n = shape[axis], inner = prod(shape[axis+1:]).
// Element (o, i, k) lives at offset (o*n+i)*inner + k. Working on contiguous
// inner blocks keeps every kernel a sequence of copy() calls.
//
// Complexity quicksheet:
//   - SliceAxis: O(result size); Concat: O(result size); Reverse: O(size);
//     MapLanes: O(size + result size) plus the cost of the lane function.

package ndarray

import (
	"fmt"
	"slices"
)

const (
	ctxSlice   = "SliceAxis"
	ctxConcat  = "Concat"
	ctxReverse = "Reverse"
	ctxLanes   = "MapLanes"
)

// NormalizeAxis maps a possibly negative axis onto [0, rank).
// Returns ErrAxis when axis < -rank or axis >= rank.
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, ErrAxis
	}
	return axis, nil
}

// around splits the shape into (outer, n, inner) for a normalized axis.
func (a *Array) around(axis int) (outer, n, inner int) {
	outer = product(a.shape[:axis])
	n = a.shape[axis]
	inner = product(a.shape[axis+1:])
	return outer, n, inner
}

// SliceAxis returns a new array keeping only the indices r selects on axis;
// every other axis is kept whole.
//
// Implementation:
//   - Stage 1: normalize axis, resolve r against the axis extent.
//   - Stage 2: copy the selected inner blocks for every outer position.
//
// Errors:
//   - ErrInvalidInput (nil receiver), ErrAxis, ErrInvalidRange.
//
// Notes:
//   - Out-of-range bounds truncate exactly like Python slicing; an empty
//     selection yields an array with a zero extent on axis.
func (a *Array) SliceAxis(axis int, r Range) (*Array, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxSlice, ErrInvalidInput)
	}
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, fmt.Errorf("%s(axis=%d): %w", ctxSlice, axis, err)
	}
	outer, n, inner := a.around(ax)
	start, step, count, err := r.Resolve(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSlice, err)
	}

	shape := slices.Clone(a.shape)
	shape[ax] = count
	out := newUnchecked(a.dtype, shape)

	var o, j, src, dst int
	for o = 0; o < outer; o++ {
		for j = 0; j < count; j++ {
			src = (o*n + start + j*step) * inner
			dst = (o*count + j) * inner
			copy(out.data[dst:dst+inner], a.data[src:src+inner])
		}
	}

	return out, nil
}

// Concat joins arrays along axis. All inputs must share rank, dtype and every
// extent except the one on axis.
//
// Errors:
//   - ErrInvalidInput when no arrays are given or one is nil.
//   - ErrTypeMismatch when dtypes differ.
//   - ErrShapeMismatch when ranks or non-axis extents differ.
//   - ErrAxis for an axis outside the shared rank.
//
// Complexity:
//   - Time O(total size), Space O(total size).
func Concat(axis int, arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxConcat, ErrInvalidInput)
	}
	if err := ValidateNotNil(arrays...); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxConcat, err)
	}
	first := arrays[0]
	ax, err := NormalizeAxis(axis, len(first.shape))
	if err != nil {
		return nil, fmt.Errorf("%s(axis=%d): %w", ctxConcat, axis, err)
	}
	if err = ValidateSameDType(arrays...); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxConcat, err)
	}
	if err = ValidateSameShapeExcept(ax, arrays...); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxConcat, err)
	}

	total := 0
	for _, a := range arrays {
		total += a.shape[ax]
	}
	shape := slices.Clone(first.shape)
	shape[ax] = total
	out := newUnchecked(first.dtype, shape)

	outer, _, inner := first.around(ax)
	var o, dst int
	for o = 0; o < outer; o++ {
		for _, a := range arrays {
			block := a.shape[ax] * inner
			copy(out.data[dst:dst+block], a.data[o*block:(o+1)*block])
			dst += block
		}
	}

	return out, nil
}

// Reverse returns a new array with the order of indices on axis reversed.
// Errors: ErrInvalidInput (nil receiver), ErrAxis.
func (a *Array) Reverse(axis int) (*Array, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxReverse, ErrInvalidInput)
	}
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, fmt.Errorf("%s(axis=%d): %w", ctxReverse, axis, err)
	}
	outer, n, inner := a.around(ax)
	out := newUnchecked(a.dtype, slices.Clone(a.shape))

	var o, i, src, dst int
	for o = 0; o < outer; o++ {
		for i = 0; i < n; i++ {
			src = (o*n + i) * inner
			dst = (o*n + n - 1 - i) * inner
			copy(out.data[dst:dst+inner], a.data[src:src+inner])
		}
	}

	return out, nil
}

// LaneFunc fills dst (the resampled lane) from src (one lane of the input).
// Implementations must not retain either slice. A non-nil error aborts MapLanes.
type LaneFunc func(dst, src []float64) error

// MapLanes rebuilds axis to length outLen by calling fn on every 1-D lane along
// it. Results are coerced to the array dtype.
//
// Implementation:
//   - Stage 1: validate axis and outLen >= 0.
//   - Stage 2: for each (outer, inner) position gather the strided lane into a
//     scratch buffer, run fn, scatter the output lane.
//
// Errors:
//   - ErrInvalidInput (nil receiver, nil fn, negative outLen), ErrAxis.
//   - The first error returned by fn, wrapped.
//
// Complexity:
//   - Time O(outer*inner*(n+outLen)) plus fn, Space O(n+outLen) scratch.
func (a *Array) MapLanes(axis, outLen int, fn LaneFunc) (*Array, error) {
	if a == nil || fn == nil || outLen < 0 {
		return nil, fmt.Errorf("%s: %w", ctxLanes, ErrInvalidInput)
	}
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, fmt.Errorf("%s(axis=%d): %w", ctxLanes, axis, err)
	}
	outer, n, inner := a.around(ax)

	shape := slices.Clone(a.shape)
	shape[ax] = outLen
	out := newUnchecked(a.dtype, shape)

	src := make([]float64, n)
	dst := make([]float64, outLen)
	var o, k, i int
	for o = 0; o < outer; o++ {
		for k = 0; k < inner; k++ {
			for i = 0; i < n; i++ {
				src[i] = a.data[(o*n+i)*inner+k]
			}
			if err = fn(dst, src); err != nil {
				return nil, fmt.Errorf("%s(axis=%d): lane %d: %w", ctxLanes, axis, o*inner+k, err)
			}
			for i = 0; i < outLen; i++ {
				out.data[(o*outLen+i)*inner+k] = a.dtype.Coerce(dst[i])
			}
		}
	}

	return out, nil
}
