// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/jointaug/ndarray"
)

// Merge concatenates the arrays of a group along Axis so that later random
// transforms see one stack and draw their parameters once for all of them.
//
// Count selects how many leading elements are merged:
//   - Count <= 0 or Count >= len(group): every element; the result is Single.
//   - otherwise: the first Count elements; the result is
//     Group(Single(merged), Group(tail...)) where the tail elements are the
//     original values, untouched.
//
// Every element, tail included, must agree in dtype and in every extent except
// the one on Axis.
type Merge struct {
	Count int
	Axis  int
}

// NewMerge builds a Merge of the first count elements. Honors WithAxis.
func NewMerge(count int, opts ...Option) *Merge {
	o := gatherOptions(opts)
	return &Merge{Count: count, Axis: o.axis}
}

// Apply merges v.
//
// Implementation:
//   - Stage 1: unpack v (a Single is a one-element group) and require every
//     element to hold a non-nil array.
//   - Stage 2: check dtype and shape agreement across all elements.
//   - Stage 3: concatenate the leading elements and attach the tail.
//
// Errors:
//   - ErrTypeMismatch for a non-array element or a dtype disagreement.
//   - ErrShapeMismatch for a rank or non-axis extent disagreement.
//   - ErrInvalidInput for an empty group, a nil array or an axis outside the rank.
//
// Complexity:
//   - Time O(size of merged arrays), Space O(same).
func (m *Merge) Apply(_ *rand.Rand, v Value) (Value, error) {
	elems, err := mergeInputs(v)
	if err != nil {
		return Value{}, err
	}

	arrays := make([]*ndarray.Array, len(elems))
	for i, e := range elems {
		if arrays[i], err = e.Array(); err != nil {
			return Value{}, fmt.Errorf("Merge[%d]: %w", i, err)
		}
	}
	ax, err := ndarray.NormalizeAxis(m.Axis, arrays[0].Rank())
	if err != nil {
		return Value{}, classify(fmt.Sprintf("Merge(axis=%d)", m.Axis), err)
	}
	if err = ndarray.ValidateSameDType(arrays...); err != nil {
		return Value{}, classify("Merge", err)
	}
	if err = ndarray.ValidateSameShapeExcept(ax, arrays...); err != nil {
		return Value{}, classify("Merge", err)
	}

	n := len(arrays)
	if m.Count <= 0 || m.Count >= n {
		merged, err := ndarray.Concat(ax, arrays...)
		if err != nil {
			return Value{}, classify("Merge", err)
		}
		return Single(merged), nil
	}

	merged, err := ndarray.Concat(ax, arrays[:m.Count]...)
	if err != nil {
		return Value{}, classify("Merge", err)
	}

	return Group(Single(merged), Group(elems[m.Count:]...)), nil
}

// mergeInputs lists the elements to merge.
func mergeInputs(v Value) ([]Value, error) {
	switch v.Kind() {
	case KindArray:
		return []Value{v}, nil
	case KindGroup:
		if v.Len() == 0 {
			return nil, fmt.Errorf("Merge: empty group: %w", ErrInvalidInput)
		}
		return v.Elems(), nil
	default:
		return nil, fmt.Errorf("Merge: got %s: %w", v.Kind(), ErrTypeMismatch)
	}
}

func (m *Merge) String() string {
	return fmt.Sprintf("Merge(count=%d, axis=%d)", m.Count, m.Axis)
}

var _ Transform = (*Merge)(nil)
