// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/jointaug/ndarray"
)

// Split cuts one array into a group of arrays, one per range along Axis.
// Ranges may overlap, leave gaps or use steps; each output is an independent
// copy.
type Split struct {
	Ranges []ndarray.Range
	Axis   int
}

// NewSplit builds a Split from [start, stop] or [start, stop, step] specs.
// Honors WithAxis.
//
// Errors:
//   - ErrInvalidInput for an empty spec list, a spec of any other length or a
//     zero step.
func NewSplit(specs [][]int, opts ...Option) (*Split, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("NewSplit: no ranges: %w", ErrInvalidInput)
	}
	ranges := make([]ndarray.Range, len(specs))
	for i, s := range specs {
		switch len(s) {
		case 2:
			ranges[i] = ndarray.NewRange(s[0], s[1])
		case 3:
			ranges[i] = ndarray.NewStepRange(s[0], s[1], s[2])
		default:
			return nil, fmt.Errorf("NewSplit[%d]: spec %v has %d fields: %w", i, s, len(s), ErrInvalidInput)
		}
	}

	return NewSplitRanges(ranges, opts...)
}

// NewSplitRanges builds a Split from pre-built ranges; the slice is copied.
// Errors: ErrInvalidInput for an empty list or a zero step.
func NewSplitRanges(ranges []ndarray.Range, opts ...Option) (*Split, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("NewSplitRanges: no ranges: %w", ErrInvalidInput)
	}
	for i, r := range ranges {
		if r.Step == 0 {
			return nil, fmt.Errorf("NewSplitRanges[%d]: %w: %w", i, ErrInvalidInput, ndarray.ErrInvalidRange)
		}
	}
	o := gatherOptions(opts)

	return &Split{Ranges: append([]ndarray.Range(nil), ranges...), Axis: o.axis}, nil
}

// Apply slices the array held by v once per range.
// Errors: ErrTypeMismatch for a group input, ErrInvalidInput for a nil array,
// an axis outside the rank or a zero-step range.
func (s *Split) Apply(_ *rand.Rand, v Value) (Value, error) {
	a, err := v.Array()
	if err != nil {
		return Value{}, fmt.Errorf("Split: %w", err)
	}
	out := make([]Value, len(s.Ranges))
	for i, r := range s.Ranges {
		part, err := a.SliceAxis(s.Axis, r)
		if err != nil {
			return Value{}, classify(fmt.Sprintf("Split[%d](%s)", i, r), err)
		}
		out[i] = Single(part)
	}

	return Group(out...), nil
}

func (s *Split) String() string {
	parts := make([]string, len(s.Ranges))
	for i, r := range s.Ranges {
		parts[i] = r.String()
	}
	return fmt.Sprintf("Split(ranges=[%s], axis=%d)", strings.Join(parts, " "), s.Axis)
}

var _ Transform = (*Split)(nil)
