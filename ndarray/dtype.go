// SPDX-License-Identifier: MIT

package ndarray

import (
	"math"
	"strconv"
)

// DType tags the logical element type of an Array. Storage is always float64;
// the tag decides how values are coerced when they enter the array.
type DType uint8

const (
	// Float64 stores values verbatim.
	Float64 DType = iota
	// Float32 rounds values to float32 precision.
	Float32
	// Int32 rounds half-to-even and clamps to the int32 range.
	Int32
	// Uint8 rounds half-to-even and clamps to [0, 255].
	Uint8
	// Bool maps values >= 0.5 to 1 and everything else to 0.
	Bool
)

var dtypeNames = [...]string{
	Float64: "float64",
	Float32: "float32",
	Int32:   "int32",
	Uint8:   "uint8",
	Bool:    "bool",
}

// String returns the lower-case dtype name ("uint8", ...).
func (d DType) String() string {
	if !d.Valid() {
		return "dtype(" + strconv.Itoa(int(d)) + ")"
	}
	return dtypeNames[d]
}

// Valid reports whether d is one of the declared dtypes.
func (d DType) Valid() bool {
	return int(d) < len(dtypeNames)
}

// IsInteger reports whether d holds integral values (Int32, Uint8, Bool).
func (d DType) IsInteger() bool {
	return d == Int32 || d == Uint8 || d == Bool
}

// Coerce maps an arbitrary float64 onto the value set of d.
// NaN is mapped to 0 for integral dtypes.
// Complexity: O(1).
func (d DType) Coerce(v float64) float64 {
	switch d {
	case Float32:
		return float64(float32(v))
	case Int32:
		return clampRound(v, math.MinInt32, math.MaxInt32)
	case Uint8:
		return clampRound(v, 0, math.MaxUint8)
	case Bool:
		if v >= 0.5 {
			return 1
		}
		return 0
	default:
		return v
	}
}

// ParseDType resolves a dtype name produced by DType.String.
func ParseDType(name string) (DType, error) {
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return 0, ErrUnknownDType
}

func clampRound(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.RoundToEven(v)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
