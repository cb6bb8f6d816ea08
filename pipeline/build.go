// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/transforms"
)

// Stage kinds understood by Build.
const (
	KindMerge             = "merge"
	KindSplit             = "split"
	KindCenterCrop        = "center_crop"
	KindResize            = "resize"
	KindRandomCrop        = "random_crop"
	KindRandomResizedCrop = "random_resized_crop"
	KindHFlip             = "hflip"
	KindVFlip             = "vflip"
	KindNoOp              = "noop"
	KindPositional        = "positional"
)

// Build turns the config into a validated Compose.
//
// Implementation:
//   - Stage 1: map every StageSpec onto a transforms.Stage; "noop" becomes
//     NoOp, "positional" becomes Positional over its "each" list, every
//     other kind becomes Uniform.
//   - Stage 2: hand the stages to transforms.NewCompose.
//
// Errors (wrapped with the stage path, e.g. "stage[2].each[1]"):
//   - ErrUnknownKind, ErrBadField. Constructor rejections are reported as
//     ErrBadField with the transforms sentinel still reachable.
func (c *Config) Build() (*transforms.Compose, error) {
	stages := make([]transforms.Stage, len(c.Stages))
	for i, spec := range c.Stages {
		path := fmt.Sprintf("stage[%d]", i)
		st, err := buildStage(path, spec)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		stages[i] = st
	}

	pipe, err := transforms.NewCompose(stages...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return pipe, nil
}

func buildStage(path string, spec StageSpec) (transforms.Stage, error) {
	switch spec.Kind {
	case KindNoOp:
		return transforms.NoOp(), nil
	case KindPositional:
		if len(spec.Each) == 0 {
			return transforms.Stage{}, fmt.Errorf("%s: empty each: %w", path, ErrBadField)
		}
		ts := make([]transforms.Transform, len(spec.Each))
		for j, sub := range spec.Each {
			subPath := fmt.Sprintf("%s.each[%d]", path, j)
			switch sub.Kind {
			case KindNoOp:
				continue
			case KindPositional:
				return transforms.Stage{}, fmt.Errorf("%s: nested positional: %w", subPath, ErrBadField)
			}
			t, err := buildTransform(subPath, sub)
			if err != nil {
				return transforms.Stage{}, err
			}
			ts[j] = t
		}
		return transforms.Positional(ts...), nil
	default:
		if len(spec.Each) > 0 {
			return transforms.Stage{}, fmt.Errorf("%s: each on %q: %w", path, spec.Kind, ErrBadField)
		}
		t, err := buildTransform(path, spec)
		if err != nil {
			return transforms.Stage{}, err
		}
		return transforms.Uniform(t), nil
	}
}

// buildTransform constructs the transform of a non-structural kind.
func buildTransform(path string, spec StageSpec) (transforms.Transform, error) {
	var opts []transforms.Option
	if spec.Axis != nil {
		opts = append(opts, transforms.WithAxis(*spec.Axis))
	}
	if spec.Interpolation != "" {
		mode, err := functional.ParseInterpolation(spec.Interpolation)
		if err != nil {
			return nil, fmt.Errorf("%s: interpolation: %w: %w", path, ErrBadField, err)
		}
		opts = append(opts, transforms.WithInterpolation(mode))
	}

	var (
		t   transforms.Transform
		err error
	)
	switch spec.Kind {
	case KindMerge:
		t = transforms.NewMerge(spec.Count, opts...)
	case KindSplit:
		t, err = transforms.NewSplit(spec.Ranges, opts...)
	case KindCenterCrop:
		h, w, serr := size(path, spec.Size)
		if serr != nil {
			return nil, serr
		}
		t, err = transforms.NewCenterCropRect(h, w)
	case KindResize:
		h, w, serr := size(path, spec.Size)
		if serr != nil {
			return nil, serr
		}
		t, err = transforms.NewResize(h, w, opts...)
	case KindRandomCrop:
		h, w, serr := size(path, spec.Size)
		if serr != nil {
			return nil, serr
		}
		t, err = transforms.NewRandomCrop(h, w)
	case KindRandomResizedCrop:
		h, w, serr := size(path, spec.Size)
		if serr != nil {
			return nil, serr
		}
		if spec.Scale != nil {
			lo, hi, perr := pair(path+".scale", spec.Scale)
			if perr != nil {
				return nil, perr
			}
			opts = append(opts, transforms.WithScale(lo, hi))
		}
		if spec.Ratio != nil {
			lo, hi, perr := pair(path+".ratio", spec.Ratio)
			if perr != nil {
				return nil, perr
			}
			opts = append(opts, transforms.WithRatio(lo, hi))
		}
		t, err = transforms.NewRandomResizedCrop(h, w, opts...)
	case KindHFlip:
		t, err = transforms.NewRandomHorizontalFlip(probability(spec.P))
	case KindVFlip:
		t, err = transforms.NewRandomVerticalFlip(probability(spec.P))
	case "":
		return nil, fmt.Errorf("%s: missing kind: %w", path, ErrBadField)
	default:
		return nil, fmt.Errorf("%s: %q: %w", path, spec.Kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w: %w", path, spec.Kind, ErrBadField, err)
	}

	return t, nil
}

// size reads [side] or [height, width].
func size(path string, s []int) (int, int, error) {
	switch len(s) {
	case 1:
		return s[0], s[0], nil
	case 2:
		return s[0], s[1], nil
	default:
		return 0, 0, fmt.Errorf("%s.size: want [side] or [height, width], got %v: %w", path, s, ErrBadField)
	}
}

func pair(path string, v []float64) (float64, float64, error) {
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("%s: want [lo, hi], got %v: %w", path, v, ErrBadField)
	}
	return v[0], v[1], nil
}

func probability(p *float64) float64 {
	if p == nil {
		return transforms.DefaultFlipProbability
	}
	return *p
}
