// SPDX-License-Identifier: MIT
// Package transforms: sentinel error set.
// Pipeline-level sentinels are defined here; ErrInvalidInput is shared with
// ndarray/functional so one errors.Is check spans every layer.

package transforms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jointaug/ndarray"
)

var (
	// ErrTypeMismatch indicates a value of the wrong kind (a group where an
	// array is required, a non-array group element) or arrays whose dtypes
	// cannot be merged.
	ErrTypeMismatch = errors.New("transforms: type mismatch")

	// ErrShapeMismatch indicates merged arrays disagree outside the merge axis.
	ErrShapeMismatch = errors.New("transforms: shape mismatch")

	// ErrArityMismatch indicates a positional stage whose length differs from
	// the length of the current group.
	ErrArityMismatch = errors.New("transforms: positional stage length does not match value length")

	// ErrUnsupportedStage indicates a stage that is neither Uniform,
	// Positional nor NoOp (including the zero Stage and Uniform(nil)).
	ErrUnsupportedStage = errors.New("transforms: unsupported stage type")

	// ErrInvalidInput indicates malformed arguments: nil arrays, bad range
	// descriptors, parameters outside their domain.
	ErrInvalidInput = ndarray.ErrInvalidInput
)

// classify re-tags ndarray errors with the pipeline taxonomy while keeping
// the original sentinel reachable through errors.Is.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, ndarray.ErrTypeMismatch):
		return fmt.Errorf("%s: %w: %w", op, ErrTypeMismatch, err)
	case errors.Is(err, ndarray.ErrShapeMismatch):
		return fmt.Errorf("%s: %w: %w", op, ErrShapeMismatch, err)
	case errors.Is(err, ErrInvalidInput):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	}
}
