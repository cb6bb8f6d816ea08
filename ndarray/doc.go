// SPDX-License-Identifier: MIT

// Package ndarray provides the dense N-dimensional array used by jointaug.
//
// 🚀 What is ndarray?
//
//	A deliberately small array type: row-major float64 storage, an explicit
//	shape, and a DType tag describing the logical element type (float64,
//	float32, int32, uint8, bool). It covers exactly what joint spatial
//	augmentation needs and nothing more:
//	  • shape introspection (Shape, Rank, Dim, Size)
//	  • axis-restricted slicing with Python-style ranges (SliceAxis)
//	  • concatenation along any axis (Concat)
//	  • reversal along one axis (Reverse)
//	  • per-lane resampling hooks (MapLanes)
//
// ✨ Guarantees:
//   - Value semantics: every operation allocates a fresh array; no result
//     aliases the storage of its inputs.
//   - DType invariant: stored values are always representable in the DType
//     (integers rounded half-to-even and clamped on ingestion).
//   - Errors, not panics: user mistakes surface as sentinel errors from errors.go.
//
// ⚙️ Usage:
//
//	img, _ := ndarray.New(ndarray.Float32, 64, 64, 3)
//	mask, _ := ndarray.New(ndarray.Float32, 64, 64, 1)
//	stack, _ := ndarray.Concat(-1, img, mask)     // (64, 64, 4)
//	left, _ := stack.SliceAxis(1, ndarray.NewRange(0, 32))
//
// Complexity:
//
//	Shape accessors are O(1); slicing, concatenation and reversal are
//	O(size of the result).
package ndarray
