// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All operations return these sentinels (optionally wrapped with call-site
// context via %w); tests match them with errors.Is.

package ndarray

import "errors"

var (
	// ErrInvalidInput is returned when a nil array or an otherwise unusable
	// argument reaches an operation.
	ErrInvalidInput = errors.New("ndarray: invalid input")

	// ErrBadShape indicates a requested shape is empty or holds a negative extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength indicates a backing slice whose length disagrees with the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrOutOfRange indicates an element index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrAxis indicates an axis outside [-rank, rank).
	ErrAxis = errors.New("ndarray: axis out of range")

	// ErrInvalidRange indicates a malformed range descriptor (zero step).
	ErrInvalidRange = errors.New("ndarray: invalid range")

	// ErrShapeMismatch indicates operands disagree on an axis that must match.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrTypeMismatch indicates operands carry different element types.
	ErrTypeMismatch = errors.New("ndarray: dtype mismatch")

	// ErrUnknownDType indicates a DType value outside the supported set.
	ErrUnknownDType = errors.New("ndarray: unknown dtype")
)
