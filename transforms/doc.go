// SPDX-License-Identifier: MIT

// Package transforms composes randomized geometric transforms that stay
// spatially consistent across an image and its paired annotations.
//
// 🚀 Why?
//
//	Drawing a random crop or flip separately for an image and for its mask
//	breaks their pixel correspondence. transforms fixes this by concatenating
//	the logical arrays into one stack (Merge), running the random transforms
//	once on that stack (a single draw per transform), and cutting the stack
//	back into its parts (Split).
//
// ✨ Building blocks:
//   - Value      - tagged pipeline value: one array (Single) or an ordered Group.
//   - Transform  - anything mapping a Value to a Value; ArrayTransform for
//     single-array transforms (CenterCrop, Resize, RandomCrop,
//     RandomResizedCrop, RandomHorizontalFlip, RandomVerticalFlip).
//   - Merge      - concatenate a group along the channel axis, optionally
//     leaving a tail untouched.
//   - Split      - cut one array into a group by axis ranges.
//   - Compose    - run Uniform / Positional / NoOp stages in order.
//
// ⚙️ Usage:
//
//	rrc, _ := transforms.NewRandomResizedCrop(64, 64)
//	flip, _ := transforms.NewRandomHorizontalFlip(0.5)
//	split, _ := transforms.NewSplit([][]int{{0, 3}, {3, 4}})
//	pipe := transforms.MustCompose(
//	    transforms.Uniform(transforms.NewMerge(0)),
//	    transforms.Uniform(rrc),
//	    transforms.Uniform(flip),
//	    transforms.Uniform(split),
//	)
//	out, err := pipe.Apply(transforms.NewStream(7), transforms.Arrays(img, mask))
//
// Randomness:
//
//	Every Apply receives a *rand.Rand (math/rand/v2). nil selects the
//	process-wide generator. A *rand.Rand is not safe for concurrent use:
//	give each worker its own stream via DeriveStream.
//
// Errors:
//
//	ErrTypeMismatch, ErrShapeMismatch, ErrArityMismatch, ErrUnsupportedStage
//	and ErrInvalidInput, matched with errors.Is. Any error aborts the whole
//	Compose run; there is no partial result.
package transforms
