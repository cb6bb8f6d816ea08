// SPDX-License-Identifier: MIT

package functional

import (
	"errors"

	"github.com/katalvlaran/jointaug/ndarray"
)

var (
	// ErrInvalidInput is shared with ndarray so one errors.Is check covers
	// both layers.
	ErrInvalidInput = ndarray.ErrInvalidInput

	// ErrUnsupportedInterpolation indicates an Interpolation outside the declared set.
	ErrUnsupportedInterpolation = errors.New("functional: unsupported interpolation mode")
)
