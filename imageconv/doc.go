// SPDX-License-Identifier: MIT

// Package imageconv moves pixels between the standard library image types and
// ndarray arrays in height×width×channel layout.
//
// Layouts:
//   - *image.Gray         ↔ (H, W, 1) uint8
//   - any other image     → (H, W, 4) uint8, non-premultiplied RGBA
//   - FromImageRGB        → (H, W, 3) uint8, alpha dropped
//   - (H, W, 3|4) arrays  → *image.NRGBA (missing alpha is opaque)
//
// Values written back to images are rounded half to even and clamped to
// [0, 255], so float pipelines can be exported without an explicit cast.
package imageconv
