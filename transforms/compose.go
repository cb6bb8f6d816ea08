// SPDX-License-Identifier: MIT

// Package transforms - staged composition.
//
// A Compose is an ordered list of Stages. Each Stage is one of three tagged
// variants:
//
//	Uniform(t)         t consumes the whole current value.
//	Positional(t...)   the value must be a group of the same length; element i
//	                   goes through t[i], a nil entry passes the element through.
//	NoOp()             the value is left unchanged.
//
// Stages are validated when the Compose is built, so a running pipeline never
// meets an unknown variant. Any error aborts the run and is returned wrapped
// with the failing stage index; there is no partial result.

package transforms

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// StageKind tags a Stage variant.
type StageKind uint8

const (
	// StageInvalid is the zero Stage; Compose rejects it.
	StageInvalid StageKind = iota
	// StageUniform applies one transform to the whole value.
	StageUniform
	// StagePositional applies one transform per group element.
	StagePositional
	// StageNoOp leaves the value unchanged.
	StageNoOp
)

// String returns "uniform", "positional", "noop" or "invalid".
func (k StageKind) String() string {
	switch k {
	case StageUniform:
		return "uniform"
	case StagePositional:
		return "positional"
	case StageNoOp:
		return "noop"
	default:
		return "invalid"
	}
}

// Stage is one step of a Compose.
type Stage struct {
	kind       StageKind
	uniform    Transform
	positional []Transform
}

// Uniform wraps t as a whole-value stage.
func Uniform(t Transform) Stage {
	return Stage{kind: StageUniform, uniform: t}
}

// Positional builds a per-element stage; the slice is copied. A nil entry
// passes its element through unchanged.
func Positional(ts ...Transform) Stage {
	return Stage{kind: StagePositional, positional: append([]Transform(nil), ts...)}
}

// NoOp is the identity stage.
func NoOp() Stage {
	return Stage{kind: StageNoOp}
}

// Kind reports the variant.
func (s Stage) Kind() StageKind { return s.kind }

// Transforms lists the transforms of the stage: one for Uniform, one per
// position (nil entries included) for Positional, none for NoOp.
func (s Stage) Transforms() []Transform {
	switch s.kind {
	case StageUniform:
		return []Transform{s.uniform}
	case StagePositional:
		return append([]Transform(nil), s.positional...)
	default:
		return nil
	}
}

func (s Stage) String() string {
	switch s.kind {
	case StageUniform:
		return describe(s.uniform)
	case StagePositional:
		parts := make([]string, len(s.positional))
		for i, t := range s.positional {
			parts[i] = describe(t)
		}
		return "Positional(" + strings.Join(parts, ", ") + ")"
	case StageNoOp:
		return "NoOp"
	default:
		return "Invalid"
	}
}

func describe(t Transform) string {
	if t == nil {
		return "Passthrough"
	}
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}

// StageEvent is reported to an observer after a stage completes.
type StageEvent struct {
	Index  int
	Kind   StageKind
	Output Value
}

// Compose runs its stages in order. It implements Transform, so pipelines nest.
// A Compose is immutable after construction and is safe to share across
// goroutines as long as each goroutine passes its own stream.
type Compose struct {
	stages []Stage
	hook   func(StageEvent)
}

// NewCompose validates stages and builds a Compose.
// Errors: ErrUnsupportedStage for the zero Stage or Uniform(nil).
func NewCompose(stages ...Stage) (*Compose, error) {
	for i, s := range stages {
		switch s.kind {
		case StageUniform:
			if s.uniform == nil {
				return nil, fmt.Errorf("compose: stage %d: nil uniform transform: %w", i, ErrUnsupportedStage)
			}
		case StagePositional, StageNoOp:
		default:
			return nil, fmt.Errorf("compose: stage %d (%s): %w", i, s.kind, ErrUnsupportedStage)
		}
	}

	return &Compose{stages: append([]Stage(nil), stages...)}, nil
}

// MustCompose is NewCompose that panics on error.
func MustCompose(stages ...Stage) *Compose {
	c, err := NewCompose(stages...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithObserver returns a copy of c that calls hook after every successful
// stage. c itself is left unchanged; a nil hook yields an unobserved copy.
func (c *Compose) WithObserver(hook func(StageEvent)) *Compose {
	return &Compose{stages: c.stages, hook: hook}
}

// Len returns the number of stages.
func (c *Compose) Len() int { return len(c.stages) }

// Stages returns a copy of the stage list.
func (c *Compose) Stages() []Stage { return append([]Stage(nil), c.stages...) }

// Apply threads v through every stage.
//
// Errors:
//   - ErrArityMismatch when a Positional stage meets a non-group or a group of
//     a different length.
//   - ErrUnsupportedStage for an unknown variant.
//   - any error returned by a transform, wrapped with the stage index.
//
// Complexity:
//   - Time: sum of the stage costs, Space: one live value per stage.
func (c *Compose) Apply(r *rand.Rand, v Value) (Value, error) {
	var err error
	for i, s := range c.stages {
		switch s.kind {
		case StageUniform:
			v, err = s.uniform.Apply(r, v)
		case StagePositional:
			v, err = applyPositional(r, s.positional, v)
		case StageNoOp:
		default:
			err = ErrUnsupportedStage
		}
		if err != nil {
			return Value{}, fmt.Errorf("compose: stage %d (%s): %w", i, s.kind, err)
		}
		if c.hook != nil {
			c.hook(StageEvent{Index: i, Kind: s.kind, Output: v})
		}
	}

	return v, nil
}

func applyPositional(r *rand.Rand, ts []Transform, v Value) (Value, error) {
	if !v.IsGroup() {
		return Value{}, fmt.Errorf("%d transforms for a single %s: %w", len(ts), v.Kind(), ErrArityMismatch)
	}
	if v.Len() != len(ts) {
		return Value{}, fmt.Errorf("%d transforms for %d values: %w", len(ts), v.Len(), ErrArityMismatch)
	}
	elems := v.Elems()
	out := make([]Value, len(elems))
	for i, t := range ts {
		if t == nil {
			out[i] = elems[i]
			continue
		}
		res, err := t.Apply(r, elems[i])
		if err != nil {
			return Value{}, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = res
	}

	return Group(out...), nil
}

func (c *Compose) String() string {
	parts := make([]string, len(c.stages))
	for i, s := range c.stages {
		parts[i] = s.String()
	}
	return "Compose(" + strings.Join(parts, ", ") + ")"
}

var _ Transform = (*Compose)(nil)
