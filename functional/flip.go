// SPDX-License-Identifier: MIT

package functional

import (
	"fmt"

	"github.com/katalvlaran/jointaug/ndarray"
)

// HFlip mirrors img left-to-right (reverses the width axis).
// HFlip(HFlip(x)) == x.
func HFlip(img *ndarray.Array) (*ndarray.Array, error) {
	if err := checkImage("HFlip", img); err != nil {
		return nil, err
	}
	out, err := img.Reverse(axisWidth)
	if err != nil {
		return nil, fmt.Errorf("HFlip: %w", err)
	}
	return out, nil
}

// VFlip mirrors img top-to-bottom (reverses the height axis).
// VFlip(VFlip(x)) == x.
func VFlip(img *ndarray.Array) (*ndarray.Array, error) {
	if err := checkImage("VFlip", img); err != nil {
		return nil, err
	}
	out, err := img.Reverse(axisHeight)
	if err != nil {
		return nil, fmt.Errorf("VFlip: %w", err)
	}
	return out, nil
}
