// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jointaug/ndarray"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindInvalid is the zero Value.
	KindInvalid Kind = iota
	// KindArray holds one array.
	KindArray
	// KindGroup holds an ordered sequence of Values.
	KindGroup
)

// String returns "invalid", "array" or "group".
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindGroup:
		return "group"
	default:
		return "invalid"
	}
}

// Value is the current value threaded through a pipeline: either one array
// or an ordered group of Values. Groups nest, which is how Merge reports an
// unmerged tail next to the merged stack. The zero Value is invalid.
type Value struct {
	kind  Kind
	arr   *ndarray.Array
	group []Value
}

// Single wraps one array.
func Single(a *ndarray.Array) Value {
	return Value{kind: KindArray, arr: a}
}

// Group builds an ordered group; the element slice is copied.
func Group(elems ...Value) Value {
	g := make([]Value, len(elems))
	copy(g, elems)

	return Value{kind: KindGroup, group: g}
}

// Arrays builds a group of Single values, one per array, in order.
func Arrays(arrays ...*ndarray.Array) Value {
	g := make([]Value, len(arrays))
	for i, a := range arrays {
		g[i] = Single(a)
	}

	return Value{kind: KindGroup, group: g}
}

// Kind reports the held variant.
func (v Value) Kind() Kind { return v.kind }

// IsArray reports whether v holds one array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsGroup reports whether v holds a group.
func (v Value) IsGroup() bool { return v.kind == KindGroup }

// Array returns the held array.
// Errors: ErrTypeMismatch when v is not an array, ErrInvalidInput when the
// held array is nil.
func (v Value) Array() (*ndarray.Array, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("Value.Array: got %s: %w", v.kind, ErrTypeMismatch)
	}
	if v.arr == nil {
		return nil, fmt.Errorf("Value.Array: nil array: %w", ErrInvalidInput)
	}
	return v.arr, nil
}

// Len returns the number of group elements (0 for non-groups).
func (v Value) Len() int {
	if v.kind != KindGroup {
		return 0
	}
	return len(v.group)
}

// Elems returns a copy of the group elements (nil for non-groups).
func (v Value) Elems() []Value {
	if v.kind != KindGroup {
		return nil
	}
	out := make([]Value, len(v.group))
	copy(out, v.group)

	return out
}

// At returns group element i.
// Errors: ErrTypeMismatch for non-groups, ErrInvalidInput for a bad index.
func (v Value) At(i int) (Value, error) {
	if v.kind != KindGroup {
		return Value{}, fmt.Errorf("Value.At: got %s: %w", v.kind, ErrTypeMismatch)
	}
	if i < 0 || i >= len(v.group) {
		return Value{}, fmt.Errorf("Value.At(%d) of %d: %w", i, len(v.group), ErrInvalidInput)
	}
	return v.group[i], nil
}

// Flatten lists every array of v depth-first, left to right.
// Errors: ErrTypeMismatch when an invalid Value is encountered.
func (v Value) Flatten() ([]*ndarray.Array, error) {
	var out []*ndarray.Array
	var walk func(Value) error
	walk = func(x Value) error {
		switch x.kind {
		case KindArray:
			out = append(out, x.arr)
			return nil
		case KindGroup:
			for _, e := range x.group {
				if err := walk(e); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("Value.Flatten: %w", ErrTypeMismatch)
		}
	}
	if err := walk(v); err != nil {
		return nil, err
	}

	return out, nil
}

// String renders the structure, e.g. "[Array(float64, [4 4 6]) [Array(uint8, [4 4 1])]]".
func (v Value) String() string {
	switch v.kind {
	case KindArray:
		return v.arr.String()
	case KindGroup:
		parts := make([]string, len(v.group))
		for i, e := range v.group {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "<invalid>"
	}
}
