// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/rank/shape/dtype checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Rank → Shape).
//  - All checks are pure and allocate nothing on the success path.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every array reference is non-nil.
// Returns wrapped ErrInvalidInput naming the first nil position.
// Complexity: O(k).
func ValidateNotNil(arrays ...*Array) error {
	for i, a := range arrays {
		if a == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil[%d]", i), ErrInvalidInput)
		}
	}
	return nil
}

// ValidateMinRank ensures a is non-nil and has at least minRank axes.
// Errors: ErrInvalidInput for nil, ErrBadShape for a low rank.
// Complexity: O(1).
func ValidateMinRank(a *Array, minRank int) error {
	if a == nil {
		return validatorErrorf("ValidateMinRank", ErrInvalidInput)
	}
	if len(a.shape) < minRank {
		return validatorErrorf(fmt.Sprintf("ValidateMinRank(%d<%d)", len(a.shape), minRank), ErrBadShape)
	}
	return nil
}

// ValidateSameDType ensures all arrays carry the first array's dtype.
// Assumes non-nil inputs (run ValidateNotNil first).
// Complexity: O(k).
func ValidateSameDType(arrays ...*Array) error {
	for i := 1; i < len(arrays); i++ {
		if arrays[i].dtype != arrays[0].dtype {
			return validatorErrorf(
				fmt.Sprintf("ValidateSameDType[%d](%s!=%s)", i, arrays[i].dtype, arrays[0].dtype),
				ErrTypeMismatch)
		}
	}
	return nil
}

// ValidateSameShapeExcept ensures all arrays share rank and every extent except
// the one on the (normalized) axis. Assumes non-nil inputs.
// Errors: ErrShapeMismatch.
// Complexity: O(k*rank).
func ValidateSameShapeExcept(axis int, arrays ...*Array) error {
	if len(arrays) == 0 {
		return nil
	}
	ref := arrays[0].shape
	for i := 1; i < len(arrays); i++ {
		s := arrays[i].shape
		if len(s) != len(ref) {
			return validatorErrorf(fmt.Sprintf("ValidateSameShapeExcept[%d]: rank %d!=%d", i, len(s), len(ref)), ErrShapeMismatch)
		}
		for k := range s {
			if k != axis && s[k] != ref[k] {
				return validatorErrorf(
					fmt.Sprintf("ValidateSameShapeExcept[%d]: axis %d %d!=%d", i, k, s[k], ref[k]),
					ErrShapeMismatch)
			}
		}
	}
	return nil
}
