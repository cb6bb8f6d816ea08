// SPDX-License-Identifier: MIT

// Package functional holds the stateless geometric primitives of jointaug.
//
// Every function takes one image (an *ndarray.Array laid out as
// height × width × channels...), returns a freshly allocated result and never
// touches its input. Non-spatial axes pass through unchanged, so the same call
// works on a 3-channel photo, a 1-channel mask or a 9-channel merged stack.
//
// Axis convention:
//
//	axis 0 = height (rows, addressed by top/height)
//	axis 1 = width  (columns, addressed by left/width)
//
// Primitives:
//   - Crop        - rectangular window, Python slicing semantics (truncates, never fails on bounds)
//   - CenterCrop  - window centred with round-half-even offsets
//   - Resize      - Bilinear (half-pixel centres, gonum interp) or Nearest resampling
//   - ResizedCrop - Crop followed by Resize
//   - HFlip/VFlip - reversal of the width/height axis
//
// Errors:
//   - ErrInvalidInput for nil images, rank < 2, negative crop extents or
//     non-positive resize targets.
//   - ErrUnsupportedInterpolation for an undeclared Interpolation value.
package functional
