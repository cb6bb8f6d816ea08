// SPDX-License-Identifier: MIT

package imageconv

import (
	"errors"

	"github.com/katalvlaran/jointaug/ndarray"
)

var (
	// ErrUnsupportedLayout indicates an array that is not (H, W, 1|3|4).
	ErrUnsupportedLayout = errors.New("imageconv: unsupported array layout")

	// ErrInvalidInput indicates a nil image or array.
	ErrInvalidInput = ndarray.ErrInvalidInput
)
