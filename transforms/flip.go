// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/ndarray"
)

// RandomHorizontalFlip mirrors the width axis with probability P.
//
// Every ApplyArray call draws exactly one uniform number, whether or not it
// flips, so the stream position after a pipeline run does not depend on the
// outcomes.
type RandomHorizontalFlip struct {
	P float64
}

// NewRandomHorizontalFlip builds a horizontal flip with probability p.
// Errors: ErrInvalidInput for p outside [0, 1].
func NewRandomHorizontalFlip(p float64) (*RandomHorizontalFlip, error) {
	if err := checkProbability("NewRandomHorizontalFlip", p); err != nil {
		return nil, err
	}
	return &RandomHorizontalFlip{P: p}, nil
}

// ApplyArray flips a when the draw is below P; otherwise it returns a copy.
func (f *RandomHorizontalFlip) ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	return flipWith("RandomHorizontalFlip", r, f.P, a, functional.HFlip)
}

// Apply implements Transform.
func (f *RandomHorizontalFlip) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("RandomHorizontalFlip", f, r, v)
}

func (f *RandomHorizontalFlip) String() string {
	return fmt.Sprintf("RandomHorizontalFlip(p=%g)", f.P)
}

// RandomVerticalFlip mirrors the height axis with probability P.
type RandomVerticalFlip struct {
	P float64
}

// NewRandomVerticalFlip builds a vertical flip with probability p.
// Errors: ErrInvalidInput for p outside [0, 1].
func NewRandomVerticalFlip(p float64) (*RandomVerticalFlip, error) {
	if err := checkProbability("NewRandomVerticalFlip", p); err != nil {
		return nil, err
	}
	return &RandomVerticalFlip{P: p}, nil
}

// ApplyArray flips a when the draw is below P; otherwise it returns a copy.
func (f *RandomVerticalFlip) ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	return flipWith("RandomVerticalFlip", r, f.P, a, functional.VFlip)
}

// Apply implements Transform.
func (f *RandomVerticalFlip) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("RandomVerticalFlip", f, r, v)
}

func (f *RandomVerticalFlip) String() string {
	return fmt.Sprintf("RandomVerticalFlip(p=%g)", f.P)
}

func checkProbability(op string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s(%g): %w", op, p, ErrInvalidInput)
	}
	return nil
}

// flipWith validates a, draws once and applies flip on success.
func flipWith(op string, r *rand.Rand, p float64, a *ndarray.Array,
	flip func(*ndarray.Array) (*ndarray.Array, error)) (*ndarray.Array, error) {
	if err := ndarray.ValidateMinRank(a, 2); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	}
	if uniform(r, 0, 1) >= p {
		return a.Clone(), nil
	}
	out, err := flip(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Compile-time assertions.
var (
	_ ArrayTransform = (*RandomHorizontalFlip)(nil)
	_ ArrayTransform = (*RandomVerticalFlip)(nil)
)
