// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// Open marks an unbounded Start or Stop in a Range (the "nothing written"
// position of a Python slice such as a[2:] or a[::-1]).
const Open = math.MinInt

// Range selects indices along one axis with Python slice semantics:
// negative bounds count from the end, bounds past either end are clamped,
// and Step may be negative to walk backwards. Step 0 is invalid.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// NewRange returns the half-open range [start, stop) with step 1.
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: stop, Step: 1}
}

// NewStepRange returns [start, stop) walking by step.
// A zero step is kept as-is and rejected when the range is resolved.
func NewStepRange(start, stop, step int) Range {
	return Range{Start: start, Stop: stop, Step: step}
}

// All returns the range selecting a whole axis.
func All() Range {
	return Range{Start: Open, Stop: Open, Step: 1}
}

// String renders the range in slice notation, e.g. "0:3" or "::-1".
func (r Range) String() string {
	b := func(v int) string {
		if v == Open {
			return ""
		}
		return fmt.Sprint(v)
	}
	if r.Step == 1 {
		return b(r.Start) + ":" + b(r.Stop)
	}
	return b(r.Start) + ":" + b(r.Stop) + ":" + fmt.Sprint(r.Step)
}

// Resolve maps the range onto an axis of length n.
//
// Implementation:
//   - Stage 1: reject Step == 0 (ErrInvalidRange).
//   - Stage 2: translate negative bounds, clamp both bounds into the legal window
//     for the walking direction ([0,n] forward, [-1,n-1] backward).
//   - Stage 3: count the selected indices.
//
// Returns:
//   - start: first selected index (meaningful only when count > 0)
//   - step:  stride between selected indices
//   - count: number of selected indices (0 for empty selections)
//
// Complexity:
//   - Time O(1), Space O(1).
func (r Range) Resolve(n int) (start, step, count int, err error) {
	if r.Step == 0 {
		return 0, 0, 0, fmt.Errorf("Range(%s): %w", r, ErrInvalidRange)
	}
	step = r.Step

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(v, def int) int {
		if v == Open {
			return def
		}
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
			return v
		}
		if v > upper {
			v = upper
		}
		return v
	}

	var stop int
	if step > 0 {
		start, stop = clamp(r.Start, lower), clamp(r.Stop, upper)
		if stop > start {
			count = (stop-start-1)/step + 1
		}
	} else {
		start, stop = clamp(r.Start, upper), clamp(r.Stop, lower)
		if start > stop {
			count = (start-stop-1)/(-step) + 1
		}
	}

	return start, step, count, nil
}

// Indices returns the concrete indices selected on an axis of length n.
func (r Range) Indices(n int) ([]int, error) {
	start, step, count, err := r.Resolve(n)
	if err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = start + i*step
	}

	return out, nil
}
