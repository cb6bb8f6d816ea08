// SPDX-License-Identifier: MIT

// Package transforms - functional configuration.
//
// A single Option type configures every constructor; each constructor reads
// only the fields it understands and validates them, returning
// ErrInvalidInput for values outside their domain.

package transforms

import "github.com/katalvlaran/jointaug/functional"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultScaleMin / DefaultScaleMax bound the area fraction sampled by RandomResizedCrop.
	DefaultScaleMin = 0.08
	DefaultScaleMax = 1.0

	// DefaultRatioMin / DefaultRatioMax bound the aspect ratio (width/height)
	// sampled log-uniformly by RandomResizedCrop.
	DefaultRatioMin = 3.0 / 4.0
	DefaultRatioMax = 4.0 / 3.0

	// DefaultFlipProbability is the flip probability used by the CLI and config
	// loader when none is given.
	DefaultFlipProbability = 0.5

	// DefaultAxis is the merge/split axis: the channel axis (last).
	DefaultAxis = -1

	// DefaultInterpolation is the resize kernel.
	DefaultInterpolation = functional.Bilinear

	// maxCropAttempts is the number of random rectangles RandomResizedCrop
	// tries before falling back to a central crop.
	maxCropAttempts = 10
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

type options struct {
	scale [2]float64
	ratio [2]float64
	mode  functional.Interpolation
	axis  int
}

func defaultOptions() options {
	return options{
		scale: [2]float64{DefaultScaleMin, DefaultScaleMax},
		ratio: [2]float64{DefaultRatioMin, DefaultRatioMax},
		mode:  DefaultInterpolation,
		axis:  DefaultAxis,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithScale sets the [lo, hi] area-fraction range of RandomResizedCrop.
func WithScale(lo, hi float64) Option {
	return func(o *options) { o.scale = [2]float64{lo, hi} }
}

// WithRatio sets the [lo, hi] aspect-ratio range of RandomResizedCrop.
func WithRatio(lo, hi float64) Option {
	return func(o *options) { o.ratio = [2]float64{lo, hi} }
}

// WithInterpolation selects the resize kernel of Resize and RandomResizedCrop.
func WithInterpolation(mode functional.Interpolation) Option {
	return func(o *options) { o.mode = mode }
}

// WithAxis selects the concatenation axis of Merge or the cut axis of Split.
func WithAxis(axis int) Option {
	return func(o *options) { o.axis = axis }
}
