// SPDX-License-Identifier: MIT

package functional

import (
	"fmt"
	"math"

	"github.com/katalvlaran/jointaug/ndarray"
)

const (
	axisHeight = 0
	axisWidth  = 1
	minRank    = 2
)

// checkImage validates the common precondition of every primitive.
func checkImage(op string, img *ndarray.Array) error {
	if err := ndarray.ValidateMinRank(img, minRank); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	}
	return nil
}

// Crop returns rows [top, top+height) and columns [left, left+width) of img.
//
// Implementation:
//   - Stage 1: validate img (non-nil, rank >= 2) and non-negative extents.
//   - Stage 2: slice the height axis, then the width axis.
//
// Behavior highlights:
//   - The rectangle is not checked against the image bounds; slicing follows
//     ndarray.Range semantics, so windows hanging over an edge are truncated
//     and a negative origin counts from the end of the axis.
//   - Channel (and any further) axes are copied whole.
//
// Errors:
//   - ErrInvalidInput.
//
// Complexity:
//   - Time O(height*width*channels), Space O(same).
func Crop(img *ndarray.Array, top, left, height, width int) (*ndarray.Array, error) {
	if err := checkImage("Crop", img); err != nil {
		return nil, err
	}
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("Crop(h=%d,w=%d): %w", height, width, ErrInvalidInput)
	}

	rows, err := img.SliceAxis(axisHeight, ndarray.NewRange(top, top+height))
	if err != nil {
		return nil, fmt.Errorf("Crop: %w", err)
	}
	out, err := rows.SliceAxis(axisWidth, ndarray.NewRange(left, left+width))
	if err != nil {
		return nil, fmt.Errorf("Crop: %w", err)
	}

	return out, nil
}

// CenterCrop crops a height×width window centred on img.
// Offsets are round((H-height)/2) and round((W-width)/2) with ties to even,
// so a 5-pixel surplus puts 2 pixels above and 3 below.
func CenterCrop(img *ndarray.Array, height, width int) (*ndarray.Array, error) {
	if err := checkImage("CenterCrop", img); err != nil {
		return nil, err
	}
	top, left, err := CenterOrigin(img.Shape(), height, width)
	if err != nil {
		return nil, err
	}

	return Crop(img, top, left, height, width)
}

// CenterOrigin returns the top-left corner CenterCrop uses for a window of
// height×width on an image of the given shape.
// Errors: ErrInvalidInput when shape has fewer than 2 axes.
func CenterOrigin(shape []int, height, width int) (top, left int, err error) {
	if len(shape) < 2 {
		return 0, 0, fmt.Errorf("CenterOrigin(%v): rank %d < 2: %w", shape, len(shape), ErrInvalidInput)
	}
	top = int(math.RoundToEven(float64(shape[axisHeight]-height) / 2))
	left = int(math.RoundToEven(float64(shape[axisWidth]-width) / 2))
	return top, left, nil
}

// ResizedCrop crops the given rectangle and resizes it to outHeight×outWidth.
func ResizedCrop(img *ndarray.Array, top, left, height, width, outHeight, outWidth int, mode Interpolation) (*ndarray.Array, error) {
	cropped, err := Crop(img, top, left, height, width)
	if err != nil {
		return nil, fmt.Errorf("ResizedCrop: %w", err)
	}
	out, err := Resize(cropped, outHeight, outWidth, mode)
	if err != nil {
		return nil, fmt.Errorf("ResizedCrop: %w", err)
	}

	return out, nil
}
