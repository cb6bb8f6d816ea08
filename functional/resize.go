// SPDX-License-Identifier: MIT

// Package functional - spatial resampling.
//
// Resize is separable: the height axis is resampled first, then the width
// axis, each through ndarray.MapLanes. Both passes run in float64 and the
// result is converted back to the input dtype once, so integer images are
// rounded a single time.
//
// Bilinear sampling uses half-pixel centres:
//
//	src = (dst + 0.5) * in/out - 0.5, clamped to [0, in-1]
//
// and evaluates the lane with gonum's interp.PiecewiseLinear over the knots
// 0..in-1. No antialiasing is applied when shrinking.

package functional

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/jointaug/ndarray"
)

// Resize resamples the two spatial axes of img to height×width.
//
// Errors:
//   - ErrInvalidInput for nil/rank<2 input, a non-positive target, or an input
//     with an empty spatial axis.
//   - ErrUnsupportedInterpolation for an unknown mode.
//
// Complexity:
//   - Time O(H*W*C + height*W*C + height*width*C), Space O(same).
func Resize(img *ndarray.Array, height, width int, mode Interpolation) (*ndarray.Array, error) {
	if err := checkImage("Resize", img); err != nil {
		return nil, err
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("Resize(%d,%d): %w", height, width, ErrInvalidInput)
	}
	shape := img.Shape()
	if shape[axisHeight] == 0 || shape[axisWidth] == 0 {
		return nil, fmt.Errorf("Resize: empty input %v: %w", shape, ErrInvalidInput)
	}

	var laneFor func(in, out int) ndarray.LaneFunc
	switch mode {
	case Bilinear:
		laneFor = bilinearLane
	case Nearest:
		laneFor = nearestLane
	default:
		return nil, fmt.Errorf("Resize(%s): %w", mode, ErrUnsupportedInterpolation)
	}

	if shape[axisHeight] == height && shape[axisWidth] == width {
		return img.Clone(), nil
	}

	work, err := img.AsType(ndarray.Float64)
	if err != nil {
		return nil, fmt.Errorf("Resize: %w", err)
	}
	if shape[axisHeight] != height {
		if work, err = work.MapLanes(axisHeight, height, laneFor(shape[axisHeight], height)); err != nil {
			return nil, fmt.Errorf("Resize: %w", err)
		}
	}
	if shape[axisWidth] != width {
		if work, err = work.MapLanes(axisWidth, width, laneFor(shape[axisWidth], width)); err != nil {
			return nil, fmt.Errorf("Resize: %w", err)
		}
	}

	out, err := work.AsType(img.DType())
	if err != nil {
		return nil, fmt.Errorf("Resize: %w", err)
	}

	return out, nil
}

// bilinearLane precomputes the sample positions for an in→out lane and
// returns a LaneFunc fitting a piecewise-linear interpolant per lane.
func bilinearLane(in, out int) ndarray.LaneFunc {
	pos := make([]float64, out)
	scale := float64(in) / float64(out)
	for i := range pos {
		p := (float64(i)+0.5)*scale - 0.5
		pos[i] = math.Min(math.Max(p, 0), float64(in-1))
	}

	if in == 1 {
		return func(dst, src []float64) error {
			for i := range dst {
				dst[i] = src[0]
			}
			return nil
		}
	}

	knots := floats.Span(make([]float64, in), 0, float64(in-1))
	return func(dst, src []float64) error {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(knots, src); err != nil {
			return err
		}
		for i, p := range pos {
			dst[i] = pl.Predict(p)
		}
		return nil
	}
}

// nearestLane maps output index i to source floor(i*in/out).
func nearestLane(in, out int) ndarray.LaneFunc {
	idx := make([]int, out)
	for i := range idx {
		j := i * in / out
		if j > in-1 {
			j = in - 1
		}
		idx[i] = j
	}

	return func(dst, src []float64) error {
		for i, j := range idx {
			dst[i] = src[j]
		}
		return nil
	}
}
