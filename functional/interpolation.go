// SPDX-License-Identifier: MIT

package functional

import (
	"fmt"
	"strings"
)

// Interpolation selects the resampling kernel used by Resize.
// The zero value is Bilinear.
type Interpolation uint8

const (
	// Bilinear interpolates linearly along each spatial axis (half-pixel centres).
	Bilinear Interpolation = iota
	// Nearest picks the source sample at floor(dst*in/out); use it for label masks.
	Nearest
)

// String returns "bilinear" or "nearest".
func (m Interpolation) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("interpolation(%d)", uint8(m))
	}
}

// ParseInterpolation resolves a case-insensitive mode name.
// The empty string maps to Bilinear.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bilinear", "linear":
		return Bilinear, nil
	case "nearest":
		return Nearest, nil
	default:
		return 0, fmt.Errorf("ParseInterpolation(%q): %w", name, ErrUnsupportedInterpolation)
	}
}
